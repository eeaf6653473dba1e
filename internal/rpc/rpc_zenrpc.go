// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	BlogService struct{ Articles, ArticleByID, Categories, Tags string }
}{
	BlogService: struct{ Articles, ArticleByID, Categories, Tags string }{
		Articles:    "articles",
		ArticleByID: "articlebyid",
		Categories:  "categories",
		Tags:        "tags",
	},
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Articles": {
				Description: `Articles retrieves articles with optional filtering by categoryId and tagId,
with pagination.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "filter",
						Type:     smd.Object,
						TypeName: "ArticlesFilter",
						Properties: smd.PropertyList{
							{
								Name:        "categoryId",
								Optional:    true,
								Description: `categoryId optional category filter`,
								Type:        smd.Integer,
							},
							{
								Name:        "tagId",
								Optional:    true,
								Description: `tagId optional tag filter`,
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
					Description: `list of articles`,
					Type:        smd.Array,
					TypeName:    "[]Article",
					Items: map[string]string{
						"$ref": "#/definitions/Article",
					},
					Definitions: map[string]smd.Definition{
						"Article": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
								{
									Name: "body",
									Type: smd.String,
								},
								{
									Name: "status",
									Type: smd.String,
								},
								{
									Name: "category",
									Ref:  "#/definitions/Category",
									Type: smd.Object,
								},
								{
									Name: "author",
									Type: smd.String,
								},
								{
									Name: "tags",
									Type: smd.Array,
									Items: map[string]string{
										"$ref": "#/definitions/Tag",
									},
								},
								{
									Name: "createdAt",
									Type: smd.String,
								},
							},
						},
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ArticleByID": {
				Description: `ArticleByID retrieves a single article with category, author and tags.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "ArticleByIDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id article numeric ID`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `article`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Article",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "body",
							Type: smd.String,
						},
						{
							Name: "status",
							Type: smd.String,
						},
						{
							Name: "category",
							Ref:  "#/definitions/Category",
							Type: smd.Object,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Tag",
							},
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "article not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories retrieves all categories ordered by title.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Array,
					TypeName:    "[]Category",
					Items: map[string]string{
						"$ref": "#/definitions/Category",
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Tags": {
				Description: `Tags retrieves all tags ordered by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of tags`,
					Type:        smd.Array,
					TypeName:    "[]Tag",
					Items: map[string]string{
						"$ref": "#/definitions/Tag",
					},
					Definitions: map[string]smd.Definition{
						"Tag": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.BlogService.Articles:
		var args = struct {
			Filter ArticlesFilter `json:"filter"`
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

		resp.Set(s.Articles(ctx, args.Filter))

	case RPC.BlogService.ArticleByID:
		var args = struct {
			Req ArticleByIDRequest `json:"req"`
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

		resp.Set(s.ArticleByID(ctx, args.Req))

	case RPC.BlogService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.BlogService.Tags:
		resp.Set(s.Tags(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
