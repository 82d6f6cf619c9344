package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordtower/pkg/cache"
	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/observability"
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/render/sink"
	"github.com/matzehuels/wordtower/pkg/selection"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"png", true},
		{"SVG", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	require.NoError(t, opts.ValidateAndSetDefaults())

	require.Equal(t, layout.DefaultWidth, opts.Config.ViewportWidth)
	require.Equal(t, layout.DefaultHeight, opts.Config.ViewportHeight)
	require.Equal(t, punctuation.DefaultKinds(), opts.Config.Punctuation)
	require.Equal(t, []string{FormatSVG}, opts.Formats)
	require.Equal(t, "the", opts.Selection.Word)
	require.Equal(t, ".", opts.Selection.Punctuation)
	require.Equal(t, 20.0, opts.ListingMin)
	require.Equal(t, 90.0, opts.ListingMax)
	require.NotNil(t, opts.Logger)
}

func TestOptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"format", Options{Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
		{"margins", Options{Config: layout.Config{MarginX: 500}}, errors.ErrCodeInvalidConfig},
		{"punctuation", Options{Config: layout.Config{Punctuation: []punctuation.Kind{}}}, errors.ErrCodeInvalidPunctuation},
		{"listing", Options{ListingMin: 50, ListingMax: 10}, errors.ErrCodeInvalidStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.code), "code = %v", errors.GetCode(err))
		})
	}
}

func TestArtifactKeyOptsIgnoresListingRangeWhenDisabled(t *testing.T) {
	a := Options{ListingMin: 10, ListingMax: 50}
	b := Options{ListingMin: 20, ListingMax: 90}
	require.Equal(t, a.ArtifactKeyOpts("svg"), b.ArtifactKeyOpts("svg"))

	a.Listing, b.Listing = true, true
	require.NotEqual(t, a.ArtifactKeyOpts("svg"), b.ArtifactKeyOpts("svg"))
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), "the cat and the hat.", Options{
		Formats: []string{FormatSVG, FormatJSON},
		Listing: true,
	})
	require.NoError(t, err)

	require.Equal(t, 5, res.Stats.Words)
	require.Equal(t, 16, res.Stats.Characters)
	require.Equal(t, 4, res.Stats.Distinct)
	require.NotEmpty(t, res.LayoutHash)
	require.False(t, res.CacheInfo.LayoutHit)

	require.Contains(t, string(res.Artifacts[FormatSVG]), "<svg")
	l, err := sink.ReadJSON(res.Artifacts[FormatJSON])
	require.NoError(t, err)
	require.Equal(t, res.Layout.WordCount, l.WordCount)
	require.Contains(t, string(res.Artifacts[FormatJSON]), `"listing"`)
}

func TestExecuteEmptyText(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), "   ", Options{})
	require.NoError(t, err)
	require.True(t, res.Layout.Empty())
	require.Nil(t, res.Layout.Unique)
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(nil, nil, nil).Execute(ctx, "a b", Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{FormatSVG}}

	first, err := r.Execute(ctx, "one two two", opts)
	require.NoError(t, err)
	require.False(t, first.CacheInfo.LayoutHit)
	require.False(t, first.CacheInfo.RenderHit)

	second, err := r.Execute(ctx, "one two two", opts)
	require.NoError(t, err)
	require.True(t, second.CacheInfo.LayoutHit)
	require.True(t, second.CacheInfo.RenderHit)
	require.Equal(t, first.LayoutHash, second.LayoutHash)
	require.Equal(t, first.Artifacts[FormatSVG], second.Artifacts[FormatSVG])

	// A different selection reuses the layout but renders anew.
	opts.Selection.Word = "two"
	third, err := r.Execute(ctx, "one two two", opts)
	require.NoError(t, err)
	require.True(t, third.CacheInfo.LayoutHit)
	require.False(t, third.CacheInfo.RenderHit)

	opts.Refresh = true
	fourth, err := r.Execute(ctx, "one two two", opts)
	require.NoError(t, err)
	require.False(t, fourth.CacheInfo.LayoutHit)
	require.False(t, fourth.CacheInfo.RenderHit)
}

func TestExecuteResolvesSelection(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil)
	ctx := context.Background()

	opts := Options{
		Formats:          []string{FormatJSON},
		Selection:        selection.Selection{Word: "zzz", Punctuation: "!"},
		DefaultSelection: selection.Selection{Word: "two"},
	}
	first, err := r.Execute(ctx, "one two two!", opts)
	require.NoError(t, err)
	require.Contains(t, string(first.Artifacts[FormatJSON]), `"word": "two"`)
	require.Contains(t, string(first.Artifacts[FormatJSON]), `"punctuation": "!"`)

	// Another absent word resolves to the same selection and shares the artifact.
	opts.Selection.Word = "yyy"
	second, err := r.Execute(ctx, "one two two!", opts)
	require.NoError(t, err)
	require.True(t, second.CacheInfo.RenderHit)
}

func TestResolveSelection(t *testing.T) {
	l, err := GenerateLayout(context.Background(), "a b, c", Options{})
	require.NoError(t, err)

	opts := Options{Selection: selection.Selection{Word: "b", Punctuation: "?"}}
	require.NoError(t, opts.ValidateForRender())
	require.Equal(t, selection.Selection{Word: "b", Punctuation: "."}, opts.ResolveSelection(l))
}

func TestExecuteConcurrent(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil)

	docs := []string{"a b c.", "well, well, well!", "x"}
	var wg sync.WaitGroup
	errs := make([]error, len(docs)*4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Execute(context.Background(), docs[i%len(docs)], Options{Formats: []string{FormatJSON}})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, words int, _ time.Duration, _ error) {
	h.record("layout")
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, _ error) {
	h.record("render:" + strings.Join(formats, ","))
}

func (h *recordingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.record("hit:" + keyType)
}

func TestExecuteEmitsHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil)

	_, err = r.Execute(context.Background(), "a b", Options{})
	require.NoError(t, err)
	_, err = r.Execute(context.Background(), "a b", Options{})
	require.NoError(t, err)

	require.Equal(t, []string{"layout", "render:svg", "hit:layout", "hit:artifact"}, h.events)
}
