// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	DigestService struct{ List, ByID, UnreadCount, DateArchive string }
}{
	DigestService: struct{ List, ByID, UnreadCount, DateArchive string }{
		List:        "list",
		ByID:        "byid",
		UnreadCount: "unreadcount",
		DateArchive: "datearchive",
	},
}

func (DigestService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves digests sorted by date DESC with news sorted by position ASC,
annotated with favorite and unread for the caller.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "filter",
						Description: `optional digest filters`,
						Type:        smd.Object,
						TypeName:    "DigestFilter",
						Properties: smd.PropertyList{
							{
								Name:        "important",
								Optional:    true,
								Description: `important keep digests with at least one news matching the flag`,
								Type:        smd.Boolean,
							},
							{
								Name:        "favorite",
								Optional:    true,
								Description: `favorite keep digests with at least one news favorited by the caller`,
								Type:        smd.Boolean,
							},
							{
								Name:        "unread",
								Optional:    true,
								Description: `unread keep digests whose read mark has this unread value`,
								Type:        smd.Boolean,
							},
							{
								Name:        "search",
								Optional:    true,
								Description: `search full-text query across news titles and bodies`,
								Type:        smd.String,
							},
							{
								Name:        "year",
								Optional:    true,
								Description: `year digest date year`,
								Type:        smd.Integer,
							},
							{
								Name:        "month",
								Optional:    true,
								Description: `month digest date month (1-12)`,
								Type:        smd.Integer,
							},
							{
								Name:        "day",
								Optional:    true,
								Description: `day digest date day`,
								Type:        smd.Integer,
							},
							{
								Name:        "page",
								Optional:    true,
								Description: `page=1 page number (1-based)`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageSize",
								Optional:    true,
								Description: `pageSize=10 items per page`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of digests`,
					Type:        smd.Array,
					TypeName:    "[]Digest",
					Items: map[string]string{
						"$ref": "#/definitions/Digest",
					},
					Definitions: map[string]smd.Definition{
						"Digest": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "digestId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "date",
									Type: smd.String,
								},
								{
									Name: "news",
									Type: smd.Array,
									Items: map[string]string{
										"$ref": "#/definitions/News",
									},
								},
								{
									Name:     "unread",
									Optional: true,
									Type:     smd.Boolean,
								},
							},
						},
						"News": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "newsId",
									Type: smd.Integer,
								},
								{
									Name: "digestId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "type",
									Type: smd.String,
								},
								{
									Name: "important",
									Type: smd.Boolean,
								},
								{
									Name: "position",
									Type: smd.Integer,
								},
								{
									Name: "favorite",
									Type: smd.Boolean,
								},
								{
									Name: "data",
									Type: smd.Object,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					401: "authentication required",
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single digest with resolved payloads and marks it read for
the caller.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "DigestByIDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id digest numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `digest with full news payloads`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Digest",
					Properties: smd.PropertyList{
						{
							Name: "digestId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "date",
							Type: smd.String,
						},
						{
							Name: "news",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/News",
							},
						},
						{
							Name:     "unread",
							Optional: true,
							Type:     smd.Boolean,
						},
					},
					Definitions: map[string]smd.Definition{
						"News": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "newsId",
									Type: smd.Integer,
								},
								{
									Name: "digestId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "type",
									Type: smd.String,
								},
								{
									Name: "important",
									Type: smd.Boolean,
								},
								{
									Name: "position",
									Type: smd.Integer,
								},
								{
									Name: "favorite",
									Type: smd.Boolean,
								},
								{
									Name: "data",
									Type: smd.Object,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					401: "authentication required",
					404: "digest not found",
					500: "internal server error",
				},
			},
			"UnreadCount": {
				Description: `UnreadCount returns the number of published digests the caller has not read.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `unread digest count`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "UnreadCount",
					Properties: smd.PropertyList{
						{
							Name: "count",
							Type: smd.Integer,
						},
					},
				},
				Errors: map[int]string{
					401: "authentication required",
					500: "internal server error",
				},
			},
			"DateArchive": {
				Description: `DateArchive returns years mapped to the ascending distinct months that have
digests.`,
				Parameters: []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `map of year to months`,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					401: "authentication required",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s DigestService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.DigestService.List:
		var args = struct {
			Filter DigestFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.DigestService.ByID:
		var args = struct {
			Req DigestByIDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.DigestService.UnreadCount:
		resp.Set(s.UnreadCount(ctx))

	case RPC.DigestService.DateArchive:
		resp.Set(s.DateArchive(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
