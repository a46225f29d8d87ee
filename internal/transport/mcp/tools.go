package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calvine/marketplace-mcp/internal/domain/offer"
	catalogsvc "github.com/calvine/marketplace-mcp/internal/service/catalog"
)

// RegisterTools registers the offer-retrieval tool. The schema declares the
// closed enumerations so well-behaved clients never send out-of-enum values;
// the handler re-checks anyway before the pipeline runs.
func RegisterTools(s *mcpserver.MCPServer, catalogSvc *catalogsvc.Service) {
	s.AddTool(mcpmcp.NewTool("fetch_marketplace_offers",
		mcpmcp.WithDescription("Fetch marketplace offers, optionally filtered. All supplied filters combine with logical AND. Returns a JSON envelope with totalOffers, appliedFilters and the offer list; an explanatory message when nothing matches."),
		mcpmcp.WithString("category",
			mcpmcp.Description("Free-text category; matches industry names, brand names and offer titles (case-insensitive substring)."),
		),
		mcpmcp.WithArray("industry",
			mcpmcp.Description("Industry tags to match. One of: "+strings.Join(offer.Industries, ", ")),
			mcpmcp.Items(map[string]any{"type": "string", "enum": offer.Industries}),
		),
		mcpmcp.WithArray("offerType",
			mcpmcp.Description("Offer classifications to match. One of: "+strings.Join(offer.OfferTypes, ", ")),
			mcpmcp.Items(map[string]any{"type": "string", "enum": offer.OfferTypes}),
		),
		mcpmcp.WithString("region",
			mcpmcp.Description("Region the brand must serve."),
			mcpmcp.Enum(offer.Regions...),
		),
		mcpmcp.WithArray("network",
			mcpmcp.Description("Partner networks to match. One of: "+strings.Join(offer.Networks, ", ")),
			mcpmcp.Items(map[string]any{"type": "string", "enum": offer.Networks}),
		),
		mcpmcp.WithString("brand",
			mcpmcp.Description("Brand name to match (case-insensitive substring)."),
		),
		mcpmcp.WithBoolean("featured",
			mcpmcp.Description("Keep only offers whose brand featured flag equals this value."),
		),
		mcpmcp.WithNumber("limitOffersCount",
			mcpmcp.Description("Maximum offers to return (positive integer)."),
		),
		mcpmcp.WithNumber("offset",
			mcpmcp.Description("Offers to skip before the first returned one (non-negative integer)."),
		),
		mcpmcp.WithNumber("maxPrice",
			mcpmcp.Description("Legacy price cap; only applies to offers that carry a list price."),
		),
	), fetchOffersHandler(catalogSvc))
}

func fetchOffersHandler(catalogSvc *catalogsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (result *mcpmcp.CallToolResult, err error) {
		// The pipeline's predicates are absence-safe, so this should never
		// fire — but an automated agent needs a flagged error result, not a
		// raw panic, if it ever does.
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(ctx, "offer tool panicked", "panic", r)
				result = mcpmcp.NewToolResultError("internal error while processing the offer query")
				err = nil
			}
		}()

		q, parseErr := parseQuery(req.GetArguments())
		if parseErr != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", parseErr)), nil
		}
		if verr := q.Validate(); verr != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", verr)), nil
		}

		res := catalogSvc.FetchOffers(ctx, q)
		if res.Empty {
			return mcpmcp.NewToolResultText(res.Message), nil
		}

		data, merr := json.Marshal(res.Envelope)
		if merr != nil {
			return mcpmcp.NewToolResultError("internal error while encoding the offer envelope"), nil
		}
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

// parseQuery maps the raw tool arguments onto a FilterQuery, distinguishing
// absent fields from explicit zero values.
func parseQuery(args map[string]any) (offer.FilterQuery, error) {
	var q offer.FilterQuery
	var err error

	q.Category, err = stringArg(args, "category", err)
	q.Industry, err = stringListArg(args, "industry", err)
	q.OfferType, err = stringListArg(args, "offerType", err)
	q.Region, err = stringArg(args, "region", err)
	q.Network, err = stringListArg(args, "network", err)
	q.Brand, err = stringArg(args, "brand", err)
	q.Featured, err = boolArg(args, "featured", err)
	q.LimitOffersCount, err = intArg(args, "limitOffersCount", err)
	q.Offset, err = intArg(args, "offset", err)
	q.MaxPrice, err = floatArg(args, "maxPrice", err)
	return q, err
}

func stringArg(args map[string]any, key string, prev error) (string, error) {
	if prev != nil {
		return "", prev
	}
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func stringListArg(args map[string]any, key string, prev error) ([]string, error) {
	if prev != nil {
		return nil, prev
	}
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch vv := v.(type) {
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a list of strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		// Single value shorthand some clients send.
		return []string{vv}, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", key)
	}
}

func boolArg(args map[string]any, key string, prev error) (*bool, error) {
	if prev != nil {
		return nil, prev
	}
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%s must be a boolean", key)
	}
	return &b, nil
}

func intArg(args map[string]any, key string, prev error) (*int, error) {
	if prev != nil {
		return nil, prev
	}
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		if i, ok := v.(int); ok {
			return &i, nil
		}
		return nil, fmt.Errorf("%s must be a number", key)
	}
	if f != float64(int(f)) {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	i := int(f)
	return &i, nil
}

func floatArg(args map[string]any, key string, prev error) (*float64, error) {
	if prev != nil {
		return nil, prev
	}
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch vv := v.(type) {
	case float64:
		return &vv, nil
	case int:
		f := float64(vv)
		return &f, nil
	default:
		return nil, fmt.Errorf("%s must be a number", key)
	}
}
