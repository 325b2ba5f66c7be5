package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// tokenHeaderPattern matches the FavQs Authorization value, "Token token=<value>".
	tokenHeaderPattern = regexp.MustCompile(`(?i)^token\s+token=\S+$`)

	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+\S+$`)
)

// secretFields are attribute keys and struct field names whose values
// never reach a log sink. The config struct logs its API token as Token.
var secretFields = []string{
	"token",
	"Token",
	"favqs_token",
	"authorization",
	"Authorization",
	"password",
	"api_key",
}

// DefaultRedactOptions returns the masq options applied to every handler.
// Extra options can be passed to NewReplaceAttr.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(secretFields)+3)
	for _, name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(tokenHeaderPattern),
		masq.WithRegex(bearerPattern),
	)
}

// NewReplaceAttr returns an slog ReplaceAttr func that redacts secrets.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
