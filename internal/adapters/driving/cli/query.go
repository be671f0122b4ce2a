package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

var (
	queryAuth     string
	queryUser     string
	queryPassword string
	queryCookie   string
	queryLang     string
	queryAPIMajor int
	queryAPIMinor int
	queryMatch    []string
	queryXML      bool
)

var queryCmd = &cobra.Command{
	Use:   "query [last name]",
	Short: "Run a OneBox query locally",
	Long: `Runs a query through the same dispatcher the HTTP endpoint uses and
prints the results. Use --xml for the raw OneBox document.

Examples:
  onebox query Brown
  onebox query Brown --auth basic --user rmiller
  onebox query Brown --auth ldap --user "UID=wbrown,OU=People,DC=acme,DC=com"
  onebox query Brown --auth sso --user acme_sso --cookie wbrown`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryAuth, "auth", "a", "none", "authentication type: none, basic, ldap or sso")
	queryCmd.Flags().StringVarP(&queryUser, "user", "u", "", "user name, LDAP DN, or SSO cookie name")
	queryCmd.Flags().StringVarP(&queryPassword, "password", "p", "", "password for basic auth (prompted when empty)")
	queryCmd.Flags().StringVar(&queryCookie, "cookie", "", "SSO cookie value")
	queryCmd.Flags().StringVar(&queryLang, "lang", "en", "two-letter language code")
	queryCmd.Flags().IntVar(&queryAPIMajor, "api-maj", 1, "OneBox API major version")
	queryCmd.Flags().IntVar(&queryAPIMinor, "api-min", 0, "OneBox API minor version")
	queryCmd.Flags().StringArrayVar(&queryMatch, "match", nil, "match group value (repeatable, becomes p0, p1, ...)")
	queryCmd.Flags().BoolVar(&queryXML, "xml", false, "print the raw XML document")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryAuth == string(domain.AuthTypeBasic) && queryPassword == "" {
		cmd.Print("Password: ")
		queryPassword = readPassword(cmd.InOrStdin())
		cmd.Println()
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	res := a.Dispatcher.Resolve(cmd.Context(), queryParams(args[0]))

	if queryXML {
		cmd.Println(a.Dispatcher.Render(res))
		return nil
	}
	printResultSet(cmd, res)
	if res.Failed() {
		return errors.New("query failed: " + res.Code().String())
	}
	return nil
}

// queryParams builds request parameters from the query flags.
func queryParams(query string) domain.Params {
	values := map[string]string{
		domain.ParamAPIMajor:   strconv.Itoa(queryAPIMajor),
		domain.ParamAPIMinor:   strconv.Itoa(queryAPIMinor),
		domain.ParamModuleName: "cli",
		domain.ParamLang:       queryLang,
		domain.ParamQuery:      query,
		domain.ParamAuthType:   queryAuth,
	}
	if queryUser != "" {
		values[domain.ParamUserName] = queryUser
	}
	if queryPassword != "" {
		values[domain.ParamPassword] = queryPassword
	}
	for i, g := range queryMatch {
		values[domain.ParamMatchGroupPrefix+strconv.Itoa(i)] = g
	}

	params := domain.Params{Values: values}
	if queryCookie != "" && queryUser != "" {
		params.Cookies = []domain.Cookie{{Name: queryUser, Value: queryCookie}}
	}
	return params
}

func printResultSet(cmd *cobra.Command, res *domain.ResultSet) {
	st := newStyles()
	out := cmd.OutOrStdout()

	if provider, ok := res.ProviderText(); ok {
		fmt.Fprintln(out, st.Title.Render(provider))
	}
	if res.Failed() {
		diag, _ := res.Diagnostics()
		fmt.Fprintf(out, "%s %s\n", st.Error.Render(res.Code().String()), diag)
		return
	}
	if text, link, ok := res.TitleLink(); ok {
		fmt.Fprintf(out, "%s %s\n", st.Success.Render(text), st.Muted.Render(link))
	}

	results := res.Results()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return
	}
	for _, mr := range results {
		fmt.Fprintln(out)
		fmt.Fprintln(out, st.Entry.Render(mr.Title))
		for _, f := range mr.Fields {
			fmt.Fprintf(out, "  %s %s\n", st.Label.Render(f.Name()), f.Value)
		}
	}
}

// readPassword reads a line without echo when in is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(password)
		}
	}
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}
