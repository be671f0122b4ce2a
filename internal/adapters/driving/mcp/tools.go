package mcp

import (
	"context"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

// QueryInput is the input schema for the onebox_query tool.
type QueryInput struct {
	Query       string   `json:"query" jsonschema:"the last name to look up"`
	AuthType    string   `json:"auth_type,omitempty" jsonschema:"none, basic, ldap or sso (default none)"`
	UserName    string   `json:"user_name,omitempty" jsonschema:"basic user name, LDAP DN, or SSO cookie name"`
	Password    string   `json:"password,omitempty" jsonschema:"password for basic authentication"`
	Cookie      string   `json:"cookie,omitempty" jsonschema:"SSO cookie value, sent under the user_name cookie"`
	Lang        string   `json:"lang,omitempty" jsonschema:"two-letter language code (default en)"`
	APIMajor    *int     `json:"api_major,omitempty" jsonschema:"OneBox API major version (default 1)"`
	APIMinor    *int     `json:"api_minor,omitempty" jsonschema:"OneBox API minor version (default 0)"`
	MatchGroups []string `json:"match_groups,omitempty" jsonschema:"regular expression match groups p0..pN"`
}

// QueryOutput is the output schema for the onebox_query tool.
type QueryOutput struct {
	ResultCode  string        `json:"result_code"`
	Diagnostics string        `json:"diagnostics,omitempty"`
	Title       string        `json:"title,omitempty"`
	Entries     []EntryOutput `json:"entries"`
	XML         string        `json:"xml"`
}

// EntryOutput is one module result.
type EntryOutput struct {
	Title  string            `json:"title"`
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "onebox_query",
		Description: "Look up employees by last name in the OneBox directory, as the given user",
	}, s.handleQuery)
}

// handleQuery handles the onebox_query tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	res := s.ports.Dispatcher.Resolve(ctx, input.params())

	output := QueryOutput{
		ResultCode: res.Code().String(),
		Entries:    make([]EntryOutput, 0, len(res.Results())),
		XML:        s.ports.Dispatcher.Render(res),
	}
	output.Diagnostics, _ = res.Diagnostics()
	output.Title, _, _ = res.TitleLink()

	for _, mr := range res.Results() {
		entry := EntryOutput{
			Title:  mr.Title,
			URL:    mr.URL,
			Fields: make(map[string]string, len(mr.Fields)),
		}
		for _, f := range mr.Fields {
			entry.Fields[f.Name()] = f.Value
		}
		output.Entries = append(output.Entries, entry)
	}

	return nil, output, nil
}

// params converts the tool input into request parameters.
func (in QueryInput) params() domain.Params {
	authType := in.AuthType
	if authType == "" {
		authType = string(domain.AuthTypeNone)
	}
	lang := in.Lang
	if lang == "" {
		lang = "en"
	}
	major, minor := 1, 0
	if in.APIMajor != nil {
		major = *in.APIMajor
	}
	if in.APIMinor != nil {
		minor = *in.APIMinor
	}

	values := map[string]string{
		domain.ParamAPIMajor:   strconv.Itoa(major),
		domain.ParamAPIMinor:   strconv.Itoa(minor),
		domain.ParamModuleName: "mcp",
		domain.ParamLang:       lang,
		domain.ParamQuery:      strings.TrimSpace(in.Query),
		domain.ParamAuthType:   authType,
	}
	if in.UserName != "" {
		values[domain.ParamUserName] = in.UserName
	}
	if in.Password != "" {
		values[domain.ParamPassword] = in.Password
	}
	for i, g := range in.MatchGroups {
		values[domain.ParamMatchGroupPrefix+strconv.Itoa(i)] = g
	}

	params := domain.Params{Values: values}
	if in.Cookie != "" && in.UserName != "" {
		params.Cookies = []domain.Cookie{{Name: in.UserName, Value: in.Cookie}}
	}
	return params
}
