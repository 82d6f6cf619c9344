package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/selection"
)

func exploreFixture(t *testing.T, doc string) (exploreModel, *selection.State, *layout.Layout) {
	t.Helper()
	l, err := layout.Compute(doc, layout.DefaultConfig())
	require.NoError(t, err)
	state := selection.NewDefault()
	state.Reconcile(l)
	return newExploreModel(l, state), state, l
}

func press(m exploreModel, keys ...string) exploreModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(exploreModel)
	}
	return m
}

func TestExploreWordNavigation(t *testing.T) {
	m, state, l := exploreFixture(t, "the cat and the hat.")
	require.Equal(t, []string{"the", "cat", "and", "hat"}, l.Keys)
	require.Equal(t, 0, m.word)

	m = press(m, "down")
	require.Equal(t, "cat", state.Current().Word)

	m = press(m, "down", "down", "down")
	require.Equal(t, "the", state.Current().Word, "navigation wraps around")

	m = press(m, "up")
	require.Equal(t, "hat", state.Current().Word)

	m = press(m, "k")
	require.Equal(t, "and", state.Current().Word)
	require.Equal(t, 2, m.word)
}

func TestExplorePunctuationNavigation(t *testing.T) {
	m, state, _ := exploreFixture(t, "wait, what? yes! no.")
	require.Equal(t, []string{"!", ",", ".", "?"}, m.symbols)
	require.Equal(t, ".", state.Current().Punctuation)

	m = press(m, "right")
	require.Equal(t, "?", state.Current().Punctuation)
	m = press(m, "right")
	require.Equal(t, "!", state.Current().Punctuation)
	m = press(m, "left", "left")
	require.Equal(t, ".", state.Current().Punctuation)

	m = press(m, "down", "r")
	require.Equal(t, selection.Selection{Word: "the", Punctuation: "."}, state.Current())
	require.Equal(t, -1, m.word, "default word does not occur")
}

func TestExploreDoesNotRecomputeLayout(t *testing.T) {
	m, _, l := exploreFixture(t, "one two two.")
	before := len(l.Geometries)
	m = press(m, "down", "right", "up", "left")
	require.Same(t, l, m.layout)
	require.Len(t, m.layout.Geometries, before)
}

func TestExploreQuit(t *testing.T) {
	m, _, _ := exploreFixture(t, "a b")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestExploreView(t *testing.T) {
	m, _, _ := exploreFixture(t, "the cat and the hat.")
	view := m.View()
	require.Contains(t, view, `"the"`)
	require.Contains(t, view, "used 2 of 5 times")
	require.Contains(t, view, "period")
	require.Contains(t, view, `"hat."`)

	empty, _, _ := exploreFixture(t, "")
	require.True(t, strings.Contains(empty.View(), "No words."))
}

func TestStep(t *testing.T) {
	require.Equal(t, -1, step(-1, 1, 0))
	require.Equal(t, 0, step(-1, -1, 3))
	require.Equal(t, 2, step(0, -1, 3))
	require.Equal(t, 0, step(2, 1, 3))
}
