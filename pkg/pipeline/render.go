package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/observability"
	"github.com/matzehuels/wordtower/pkg/render/sink"
	"github.com/matzehuels/wordtower/pkg/render/styles"
)

// RenderFromLayout renders l in every requested format without caching.
func RenderFromLayout(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.Selection = opts.ResolveSelection(l)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(l, opts)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(l *layout.Layout, opts Options) (map[string][]byte, error) {
	var listing []styles.ListingEntry
	if opts.Listing {
		var err error
		listing, err = styles.Listing(l, opts.ListingMin, opts.ListingMax)
		if err != nil {
			return nil, err
		}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []sink.SVGOption{sink.WithSelection(opts.Selection)}
			if opts.Listing {
				svgOpts = append(svgOpts, sink.WithListing(listing))
			}
			if opts.Static {
				svgOpts = append(svgOpts, sink.WithoutInteraction())
			}
			artifacts[format] = sink.RenderSVG(l, svgOpts...)
		case FormatJSON:
			jsonOpts := []sink.JSONOption{sink.WithJSONSelection(opts.Selection)}
			if opts.Listing {
				jsonOpts = append(jsonOpts, sink.WithJSONListing(listing))
			}
			data, err := sink.RenderJSON(l, jsonOpts...)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			artifacts[format] = data
		default:
			return nil, ValidateFormat(format)
		}
	}
	return artifacts, nil
}
