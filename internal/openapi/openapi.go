// Package openapi describes the wallet API as an OpenAPI 3 document served
// alongside the API itself.
package openapi

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Version is the OpenAPI specification version the document conforms to.
const Version = "3.0.1"

type Document struct {
	OpenAPI string              `json:"openapi" yaml:"openapi"`
	Info    Info                `json:"info" yaml:"info"`
	Servers []Server            `json:"servers" yaml:"servers"`
	Tags    []Tag               `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths   map[string]PathItem `json:"paths" yaml:"paths"`
	Comps   Components          `json:"components" yaml:"components"`
}

type Info struct {
	Title          string  `json:"title" yaml:"title"`
	Description    string  `json:"description" yaml:"description"`
	Version        string  `json:"version" yaml:"version"`
	TermsOfService string  `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        Contact `json:"contact" yaml:"contact"`
	License        License `json:"license" yaml:"license"`
}

type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	URL   string `json:"url" yaml:"url"`
}

type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type PathItem struct {
	Get *Operation `json:"get,omitempty" yaml:"get,omitempty"`
}

type Operation struct {
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string              `json:"summary" yaml:"summary"`
	Description string              `json:"description" yaml:"description"`
	OperationID string              `json:"operationId" yaml:"operationId"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	In          string `json:"in" yaml:"in"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
	Schema      Schema `json:"schema" yaml:"schema"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
}

type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type MediaType struct {
	Schema  Schema `json:"schema" yaml:"schema"`
	Example any    `json:"example,omitempty" yaml:"example,omitempty"`
}

type Schema struct {
	Ref         string            `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string            `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Example     string            `json:"example,omitempty" yaml:"example,omitempty"`
	Nullable    bool              `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Items       *Schema           `json:"items,omitempty" yaml:"items,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type Components struct {
	Schemas map[string]Schema `json:"schemas" yaml:"schemas"`
}

// Options controls the parts of the document that vary per deployment.
type Options struct {
	BasePath  string
	ServerURL string
}

const (
	jsonMIME  = "application/json"
	textMIME  = "text/plain"
	walletRef = "#/components/schemas/BTCWallet"
	walletTag = "BTC Wallet"
)

// Build returns the document describing the wallet routes mounted under
// opts.BasePath.
func Build(opts Options) Document {
	walletJSON := func(desc string) Response {
		return Response{
			Description: desc,
			Content:     map[string]MediaType{jsonMIME: {Schema: Schema{Ref: walletRef}}},
		}
	}
	internal := Response{Description: "Internal server error"}

	servers := []Server{{URL: "http://localhost:8001", Description: "Development server"}}
	if opts.ServerURL != "" && opts.ServerURL != servers[0].URL {
		servers = append(servers, Server{URL: opts.ServerURL, Description: "Configured server"})
	}

	return Document{
		OpenAPI: Version,
		Info: Info{
			Title:          "BTC Wallet Service API",
			Description:    "Read-only endpoints exposing demonstration Bitcoin wallet records.",
			Version:        "1.0.0",
			TermsOfService: "https://www.apache.org/licenses/LICENSE-2.0",
			Contact: Contact{
				Name:  "BTC Wallet Service",
				Email: "demo@example.com",
				URL:   "https://example.com/btcwallet",
			},
			License: License{Name: "Apache License, Version 2.0", URL: "https://www.apache.org/licenses/LICENSE-2.0"},
		},
		Servers: servers,
		Tags:    []Tag{{Name: walletTag, Description: "BTC Wallet management APIs"}},
		Paths: map[string]PathItem{
			opts.BasePath + "/first": {Get: &Operation{
				Tags:        []string{walletTag},
				Summary:     "Get first wallet",
				Description: "Retrieves the first BTC wallet in the list",
				OperationID: "getFirstWallet",
				Responses: map[string]Response{
					"200": walletJSON("Successfully retrieved the first wallet"),
					"500": internal,
				},
			}},
			opts.BasePath + "/address/{address}": {Get: &Operation{
				Tags:        []string{walletTag},
				Summary:     "Get wallet by address",
				Description: "Retrieves a BTC wallet by its address. Unknown addresses yield a null body.",
				OperationID: "getWalletByAddress",
				Parameters: []Parameter{{
					Name:        "address",
					In:          "path",
					Description: "The address of the wallet",
					Required:    true,
					Schema:      Schema{Type: "string"},
					Example:     "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
				}},
				Responses: map[string]Response{
					"200": walletJSON("The wallet, or null when no wallet has this address"),
					"500": internal,
				},
			}},
			opts.BasePath + "/all": {Get: &Operation{
				Tags:        []string{walletTag},
				Summary:     "Get all wallets",
				Description: "Retrieves all BTC wallets in the system",
				OperationID: "getAllWallets",
				Responses: map[string]Response{
					"200": {
						Description: "Successfully retrieved all wallets",
						Content: map[string]MediaType{jsonMIME: {
							Schema: Schema{Type: "array", Items: &Schema{Ref: walletRef}},
						}},
					},
					"500": internal,
				},
			}},
			opts.BasePath + "/health": {Get: &Operation{
				Tags:        []string{walletTag},
				Summary:     "Health check",
				Description: "Checks if the BTC Wallet service is running and healthy",
				OperationID: "health",
				Responses: map[string]Response{
					"200": {
						Description: "Service is healthy",
						Content: map[string]MediaType{textMIME: {
							Schema:  Schema{Type: "string"},
							Example: "BTC Wallet Service is running!",
						}},
					},
				},
			}},
		},
		Comps: Components{Schemas: map[string]Schema{
			"BTCWallet": {
				Type:        "object",
				Description: "BTCWallet entity representing a Bitcoin wallet",
				Nullable:    true,
				Properties: map[string]Schema{
					"address": {Type: "string", Description: "The wallet address", Example: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
					"balance": {Type: "string", Description: "The balance of the wallet", Example: "0.001 BTC"},
					"date":    {Type: "string", Format: "date", Description: "The date associated with this wallet", Example: "2025-08-10"},
				},
			},
		}},
	}
}

// JSON renders the document as indented JSON.
func (d Document) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi json: %w", err)
	}
	return out, nil
}

// YAML renders the document as YAML.
func (d Document) YAML() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi yaml: %w", err)
	}
	return out, nil
}
