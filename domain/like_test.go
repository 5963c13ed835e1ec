package domain_test

import (
	"testing"

	"github.com/postline/postline/domain"
	"github.com/stretchr/testify/assert"
)

func TestToggleMemberAdd(t *testing.T) {
	got := domain.ToggleMember([]string{"u1", "u2"}, "u3")
	assert.Equal(t, []string{"u1", "u2", "u3"}, got)
}

func TestToggleMemberRemove(t *testing.T) {
	got := domain.ToggleMember([]string{"u1", "u2", "u3"}, "u2")
	assert.Equal(t, []string{"u1", "u3"}, got)
}

func TestToggleMemberEmptySet(t *testing.T) {
	got := domain.ToggleMember(nil, "u1")
	assert.Equal(t, []string{"u1"}, got)
}

func TestToggleMemberInvolutive(t *testing.T) {
	sets := [][]string{
		nil,
		{},
		{"u1"},
		{"u1", "u2", "u3"},
		{"u2", "u1"},
	}
	users := []string{"u1", "u2", "u9"}

	for _, s := range sets {
		for _, u := range users {
			got := domain.ToggleMember(domain.ToggleMember(s, u), u)
			assert.ElementsMatch(t, s, got, "toggle twice must restore %v for %s", s, u)
		}
	}
}

func TestToggleMemberDoesNotMutateInput(t *testing.T) {
	in := []string{"u1", "u2", "u3"}
	_ = domain.ToggleMember(in, "u2")
	_ = domain.ToggleMember(in, "u4")
	assert.Equal(t, []string{"u1", "u2", "u3"}, in)
}
