package parse

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// OutputFormat selects which markup a render produces.
type OutputFormat string

const (
	OutputHTMLAndMathML OutputFormat = "htmlAndMathml"
	OutputHTML          OutputFormat = "html"
	OutputMathML        OutputFormat = "mathml"
)

// StrictLevel is the policy for LaTeX-incompatible input.
type StrictLevel string

const (
	StrictIgnore StrictLevel = "ignore"
	StrictWarn   StrictLevel = "warn"
	StrictError  StrictLevel = "error"
)

// StrictFunc decides the StrictLevel for one nonstrict condition. A returned
// error is treated as StrictError.
type StrictFunc func(code, message string, loc Locator) (StrictLevel, error)

// TrustContext describes a command that wants to emit a URL or raw HTML
// attributes.
type TrustContext struct {
	Command    string
	URL        string
	Protocol   string // lowercased scheme, or "_relative"
	Class      string
	ID         string
	Style      string
	Attributes map[string]string
}

// TrustFunc authorizes a TrustContext.
type TrustFunc func(ctx TrustContext) bool

// Settings controls parsing and rendering of one expression.
type Settings struct {
	// DisplayMode renders in display style (centered block) instead of inline.
	DisplayMode bool
	// Output selects HTML, MathML or both.
	Output OutputFormat
	// Leqno places equation tags on the left.
	Leqno bool
	// Fleqn left-aligns display math.
	Fleqn bool
	// ThrowOnError makes renders fail on parse errors instead of producing
	// an error placeholder.
	ThrowOnError bool
	// ErrorColor is the color of the error placeholder and of unsupported
	// commands.
	ErrorColor string
	// Macros holds user-defined macros. Global definitions made during a
	// parse (\gdef, \global\def) are written back to this map.
	Macros map[string]*Macro
	// MinRuleThickness is the minimum thickness, in ems, of fraction lines,
	// \sqrt vincula and other rules.
	MinRuleThickness float64
	// ColorIsTextColor makes \color behave like \textcolor.
	ColorIsTextColor bool
	// Strict is the policy for LaTeX-incompatible input when neither
	// StrictFunc nor StrictExpr is set.
	Strict StrictLevel
	// StrictFunc overrides Strict with a per-condition decision.
	StrictFunc StrictFunc
	// StrictExpr is an expression over code and message evaluating to a
	// StrictLevel string or a bool.
	StrictExpr string
	// Trust is the authorization for URL and HTML commands when neither
	// TrustFunc nor TrustExpr is set.
	Trust bool
	// TrustFunc authorizes URL and HTML commands individually.
	TrustFunc TrustFunc
	// TrustExpr is a boolean expression over command, url, protocol, class,
	// id, style and attributes.
	TrustExpr string
	// MaxSize caps user-specified sizes, in ems.
	MaxSize float64
	// MaxExpand limits the number of macro expansions per parse. A negative
	// value disables the limit.
	MaxExpand int
	// GlobalGroup makes definitions at the top level of the expression
	// persist into Macros.
	GlobalGroup bool
	// Logger receives strict-mode warnings and missing metric notices.
	// If nil, slog.Default is used.
	Logger *slog.Logger

	strictProg *vm.Program
	trustProg  *vm.Program
}

// Option configures Settings.
type Option func(*Settings)

func WithDisplayMode(v bool) Option { return func(s *Settings) { s.DisplayMode = v } }
func WithOutput(v OutputFormat) Option { return func(s *Settings) { s.Output = v } }
func WithLeqno(v bool) Option { return func(s *Settings) { s.Leqno = v } }
func WithFleqn(v bool) Option { return func(s *Settings) { s.Fleqn = v } }
func WithThrowOnError(v bool) Option { return func(s *Settings) { s.ThrowOnError = v } }
func WithErrorColor(v string) Option { return func(s *Settings) { s.ErrorColor = v } }
func WithMinRuleThickness(v float64) Option { return func(s *Settings) { s.MinRuleThickness = v } }
func WithColorIsTextColor(v bool) Option { return func(s *Settings) { s.ColorIsTextColor = v } }
func WithStrict(v StrictLevel) Option { return func(s *Settings) { s.Strict = v } }
func WithStrictFunc(f StrictFunc) Option { return func(s *Settings) { s.StrictFunc = f } }
func WithStrictExpr(src string) Option { return func(s *Settings) { s.StrictExpr = src } }
func WithTrust(v bool) Option { return func(s *Settings) { s.Trust = v } }
func WithTrustFunc(f TrustFunc) Option { return func(s *Settings) { s.TrustFunc = f } }
func WithTrustExpr(src string) Option { return func(s *Settings) { s.TrustExpr = src } }
func WithMaxSize(v float64) Option { return func(s *Settings) { s.MaxSize = v } }
func WithMaxExpand(v int) Option { return func(s *Settings) { s.MaxExpand = v } }
func WithGlobalGroup(v bool) Option { return func(s *Settings) { s.GlobalGroup = v } }
func WithLogger(l *slog.Logger) Option { return func(s *Settings) { s.Logger = l } }

// WithMacro defines a user macro from its replacement text.
func WithMacro(name, body string) Option {
	return func(s *Settings) {
		if s.Macros == nil {
			s.Macros = make(map[string]*Macro)
		}
		s.Macros[name] = &Macro{Text: body}
	}
}

// WithMacros shares a macro map with the settings, so global definitions
// persist across renders that use the same map.
func WithMacros(m map[string]*Macro) Option { return func(s *Settings) { s.Macros = m } }

// DefaultSettings returns settings with every option at its default value.
func DefaultSettings() *Settings {
	return &Settings{
		Output:       OutputHTMLAndMathML,
		ThrowOnError: true,
		ErrorColor:   "#cc0000",
		Strict:       StrictWarn,
		MaxSize:      math.Inf(1),
		MaxExpand:    1000,
	}
}

// NewSettings builds settings from the defaults and opts, then validates
// them and compiles policy expressions.
func NewSettings(opts ...Option) (*Settings, error) {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Init validates the settings, clamps numeric options and compiles the
// policy expressions. It must be called on a Settings built by hand before
// use.
func (s *Settings) Init() error {
	var errs []error

	s.MinRuleThickness = math.Max(0, s.MinRuleThickness)
	s.MaxSize = math.Max(0, s.MaxSize)
	if s.Output == "" {
		s.Output = OutputHTMLAndMathML
	}
	switch s.Output {
	case OutputHTMLAndMathML, OutputHTML, OutputMathML:
	default:
		errs = append(errs, fmt.Errorf("invalid output %q", s.Output))
	}
	if s.Strict == "" {
		s.Strict = StrictWarn
	}
	if s.ErrorColor == "" {
		s.ErrorColor = "#cc0000"
	}

	if s.StrictExpr != "" {
		prog, err := expr.Compile(s.StrictExpr, expr.Env(strictEnv("", "")))
		if err != nil {
			errs = append(errs, fmt.Errorf("compile strict expression: %w", err))
		}
		s.strictProg = prog
	}
	if s.TrustExpr != "" {
		prog, err := expr.Compile(s.TrustExpr, expr.Env(trustEnv(TrustContext{})), expr.AsBool())
		if err != nil {
			errs = append(errs, fmt.Errorf("compile trust expression: %w", err))
		}
		s.trustProg = prog
	}

	return errors.Join(errs...)
}

func (s *Settings) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Warn logs a non-fatal condition through the configured logger.
func (s *Settings) Warn(msg string, args ...any) {
	s.logger().Warn(msg, args...)
}

func strictEnv(code, message string) map[string]any {
	return map[string]any{"code": code, "message": message}
}

func trustEnv(ctx TrustContext) map[string]any {
	attrs := ctx.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	return map[string]any{
		"command":    ctx.Command,
		"url":        ctx.URL,
		"protocol":   ctx.Protocol,
		"class":      ctx.Class,
		"id":         ctx.ID,
		"style":      ctx.Style,
		"attributes": attrs,
	}
}

// strictLevel resolves the policy for one condition.
func (s *Settings) strictLevel(code, message string, loc Locator) (StrictLevel, error) {
	switch {
	case s.StrictFunc != nil:
		return s.StrictFunc(code, message, loc)
	case s.strictProg != nil:
		out, err := expr.Run(s.strictProg, strictEnv(code, message))
		if err != nil {
			return "", fmt.Errorf("evaluate strict expression: %w", err)
		}
		switch v := out.(type) {
		case bool:
			if v {
				return StrictError, nil
			}
			return StrictIgnore, nil
		case string:
			return StrictLevel(v), nil
		case nil:
			return StrictIgnore, nil
		default:
			return "", fmt.Errorf("strict expression returned %T", out)
		}
	}
	return s.Strict, nil
}

// ReportNonstrict reports a LaTeX-incompatible construct. It returns a
// ParseError when the policy is "error", logs on "warn", and does nothing on
// "ignore".
func (s *Settings) ReportNonstrict(code, message string, loc Locator) error {
	level, err := s.strictLevel(code, message, loc)
	if err != nil {
		return err
	}
	switch level {
	case "", StrictIgnore:
		return nil
	case StrictError:
		return NewParseError(fmt.Sprintf("LaTeX-incompatible input and strict mode is set to 'error': %s [%s]", message, code), loc)
	case StrictWarn:
		s.Warn("LaTeX-incompatible input and strict mode is set to 'warn'", "code", code, "message", message)
	default:
		s.Warn(fmt.Sprintf("LaTeX-incompatible input and strict mode is set to unrecognized '%s'", level),
			"code", code, "message", message)
	}
	return nil
}

// UseStrictBehavior reports whether a LaTeX-incompatible construct should be
// treated strictly. Unlike ReportNonstrict it never fails: a policy error
// counts as "error".
func (s *Settings) UseStrictBehavior(code, message string, loc Locator) bool {
	level, err := s.strictLevel(code, message, loc)
	if err != nil {
		level = StrictError
	}
	switch level {
	case "", StrictIgnore:
		return false
	case StrictError:
		return true
	case StrictWarn:
		s.Warn("LaTeX-incompatible input and strict mode is set to 'warn'", "code", code, "message", message)
	default:
		s.Warn(fmt.Sprintf("LaTeX-incompatible input and strict mode is set to unrecognized '%s'", level),
			"code", code, "message", message)
	}
	return false
}

// IsTrusted reports whether the command described by ctx may run. When a URL
// is given, its protocol is derived first; a URL whose scheme contains
// disallowed characters is never trusted.
func (s *Settings) IsTrusted(ctx TrustContext) bool {
	if ctx.URL != "" && ctx.Protocol == "" {
		protocol, ok := ProtocolFromURL(ctx.URL)
		if !ok {
			return false
		}
		ctx.Protocol = protocol
	}
	switch {
	case s.TrustFunc != nil:
		return s.TrustFunc(ctx)
	case s.trustProg != nil:
		out, err := expr.Run(s.trustProg, trustEnv(ctx))
		if err != nil {
			s.Warn("Evaluate trust expression", "command", ctx.Command, "error", err)
			return false
		}
		v, _ := out.(bool)
		return v
	}
	return s.Trust
}

var (
	protocolRegex = regexp.MustCompile(`(?i)^[\x00-\x20]*([^\\/#?]*?)(:|&#0*58|&#x0*3a|&colon)`)
	schemeRegex   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z\d+\-.]*$`)
)

// ProtocolFromURL returns the lowercased scheme of url, "_relative" for a
// relative URL, or false when the apparent scheme is invalid or written
// with an HTML-escaped colon.
func ProtocolFromURL(url string) (string, bool) {
	m := protocolRegex.FindStringSubmatch(url)
	if m == nil {
		return "_relative", true
	}
	if m[2] != ":" {
		return "", false
	}
	if !schemeRegex.MatchString(m[1]) {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
