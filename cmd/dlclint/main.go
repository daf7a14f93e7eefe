package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/checker"
	"github.com/dlclint/dlclint/internal/config"
	"github.com/dlclint/dlclint/internal/constraints"
	"github.com/dlclint/dlclint/internal/docset"
	"github.com/dlclint/dlclint/internal/industry"
	"github.com/dlclint/dlclint/internal/llm"
	"github.com/dlclint/dlclint/internal/patch"
	"github.com/dlclint/dlclint/internal/redact"
	"github.com/dlclint/dlclint/internal/render"
	"github.com/dlclint/dlclint/internal/risk"
	"github.com/dlclint/dlclint/internal/schema"
	"github.com/dlclint/dlclint/internal/schema/validate"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// analyzeFlags holds the parsed flags for the analyze command.
type analyzeFlags struct {
	answersPath       string
	format            string
	out               string
	failOn            string
	severityThreshold string
	diffOut           string
	configPath        string
	disabled          []string
	verbose           bool
}

// generateFlags holds the parsed flags for the generate command.
type generateFlags struct {
	answersPath string
	doc         string
	out         string
	failOn      string
	configPath  string
	temperature float64
	maxTokens   int
	verbose     bool
}

func main() {
	root := &cobra.Command{
		Use:   "dlclint",
		Short: "Lint A2P 10DLC registration document sets",
		Long: "dlclint classifies a business by industry restriction tier, compiles the\n" +
			"constraints SMS compliance documents must honor, and verifies a finished\n" +
			"document set against the carrier rulebook.",
	}

	var classifyAnswers string
	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a business into an industry restriction tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(classifyAnswers)
		},
	}
	classifyCmd.Flags().StringVar(&classifyAnswers, "answers", "", "Intake questionnaire JSON file (required)")
	classifyCmd.MarkFlagRequired("answers")

	var compileAnswers, compileFormat string
	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile generation constraints from questionnaire answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(compileAnswers, compileFormat)
		},
	}
	compileCmd.Flags().StringVar(&compileAnswers, "answers", "", "Intake questionnaire JSON file (required)")
	compileCmd.Flags().StringVar(&compileFormat, "format", "json", "Output format: json or prompt")
	compileCmd.MarkFlagRequired("answers")

	var aFlags analyzeFlags
	analyzeCmd := &cobra.Command{
		Use:   "analyze <docset-file>",
		Short: "Verify a document set and report compliance risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], aFlags)
		},
	}
	af := analyzeCmd.Flags()
	af.StringVar(&aFlags.answersPath, "answers", "", "Intake questionnaire JSON file (required)")
	af.StringVar(&aFlags.format, "format", "json", "Output format: json or md")
	af.StringVar(&aFlags.out, "out", "", "Write output to file instead of stdout")
	af.StringVar(&aFlags.failOn, "fail-on", "", "Exit 2 if overall risk >= this level (needs_attention or at_risk)")
	af.StringVar(&aFlags.severityThreshold, "severity-threshold", "low", "Minimum severity to emit: low, medium, high, or critical")
	af.StringVar(&aFlags.diffOut, "diff-out", "", "Write consent-text divergence in diff-match-patch format to this file")
	af.StringVar(&aFlags.configPath, "config", "dlclint.yaml", "Configuration file path")
	af.StringArrayVar(&aFlags.disabled, "disable", nil, "Check IDs to skip (may be repeated)")
	af.BoolVar(&aFlags.verbose, "verbose", false, "Print processing steps to stderr")
	analyzeCmd.MarkFlagRequired("answers")

	var gFlags generateFlags
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a document set and immediately re-verify it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(gFlags)
		},
	}
	gf := generateCmd.Flags()
	gf.StringVar(&gFlags.answersPath, "answers", "", "Intake questionnaire JSON file (required)")
	gf.StringVar(&gFlags.doc, "doc", "", "Print only one document: submission_language, privacy_policy, or terms_conditions")
	gf.StringVar(&gFlags.out, "out", "", "Write output to file instead of stdout")
	gf.StringVar(&gFlags.failOn, "fail-on", "", "Exit 2 if the generated set's risk >= this level")
	gf.StringVar(&gFlags.configPath, "config", "dlclint.yaml", "Configuration file path")
	gf.Float64Var(&gFlags.temperature, "temperature", 0.2, "Generator temperature")
	gf.IntVar(&gFlags.maxTokens, "max-tokens", 8192, "Maximum response tokens")
	gf.BoolVar(&gFlags.verbose, "verbose", false, "Print processing steps to stderr")
	generateCmd.MarkFlagRequired("answers")

	root.AddCommand(classifyCmd, compileCmd, analyzeCmd, generateCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

// classification is the JSON shape printed by the classify command.
type classification struct {
	Tier       industry.Tier    `json:"tier"`
	Restricted []restrictedInfo `json:"restricted,omitempty"`
	Unknown    []string         `json:"unknown,omitempty"`
}

type restrictedInfo struct {
	Industry       string   `json:"industry"`
	Prohibited     []string `json:"prohibited"`
	Allowed        []string `json:"allowed"`
	RegulatoryNote string   `json:"regulatory_note"`
}

func runClassify(answersPath string) error {
	a, err := answers.Load(answersPath)
	if err != nil {
		return codeError(3, "loading answers: %s", err)
	}

	cls := industry.Classify(a.Industries())
	out := classification{Tier: cls.Tier, Unknown: cls.Unknown}
	for _, label := range cls.Restricted {
		r, ok := industry.RuleFor(label)
		if !ok {
			continue
		}
		out.Restricted = append(out.Restricted, restrictedInfo{
			Industry:       label,
			Prohibited:     r.Prohibited,
			Allowed:        r.Allowed,
			RegulatoryNote: r.RegulatoryNote,
		})
	}

	return printJSON(out, "")
}

func runCompile(answersPath, format string) error {
	switch format {
	case "json", "prompt":
	default:
		return codeError(3, "--format must be json or prompt, got %q", format)
	}

	a, err := answers.Load(answersPath)
	if err != nil {
		return codeError(3, "loading answers: %s", err)
	}

	c, err := constraints.Compile(a, industry.Classify(a.Industries()))
	if err != nil {
		return codeError(3, "compiling constraints: %s", err)
	}

	if format == "prompt" {
		fmt.Print(c.FormatForPrompt())
		return nil
	}
	return printJSON(c, "")
}

func runAnalyze(docsetPath string, flags analyzeFlags) error {
	// --- Step 1: Validate flags ---
	if err := validateAnalyzeFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	// --- Step 2: Load config ---
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return codeError(3, "loading config: %s", err)
	}
	if err := config.Validate(cfg); err != nil {
		return codeError(3, "invalid config: %s", err)
	}

	// --- Step 3: Merge disabled checks (config + flags) ---
	disabled := make(map[string]bool)
	for _, id := range cfg.Checks.Disabled {
		disabled[id] = true
	}
	for _, id := range flags.disabled {
		disabled[id] = true
	}

	// --- Step 4: Load answers ---
	logVerbose(flags.verbose, "Loading answers: %s", flags.answersPath)
	a, err := answers.Load(flags.answersPath)
	if err != nil {
		return codeError(3, "loading answers: %s", err)
	}

	// --- Step 5: Load document set ---
	logVerbose(flags.verbose, "Loading document set: %s", docsetPath)
	set, err := docset.Load(docsetPath)
	if err != nil {
		return codeError(3, "loading document set: %s", err)
	}

	// --- Step 6: Run the checker ---
	logVerbose(flags.verbose, "Running %d registered checks", len(checker.List(disabled)))
	result := checker.Analyze(set, a, disabled)
	result.Meta.Tool = "dlclint"
	result.Meta.Version = version

	// --- Step 7: Write consent diffs ---
	if flags.diffOut != "" {
		logVerbose(flags.verbose, "Generating consent diffs → %s", flags.diffOut)
		diffText := patch.GenerateConsentDiffs(checker.NewTarget(set, a), os.Stderr)
		if err := os.WriteFile(flags.diffOut, []byte(diffText), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "WARN: diff write failed: %s\n", err)
			// Continue — diffs are advisory.
		}
	}

	// --- Step 8: Apply severity threshold (output only; summary and risk
	// always reflect all issues) ---
	result.Issues = risk.FilterBySeverity(result.Issues, schema.Severity(flags.severityThreshold))

	// --- Step 9: Render and write ---
	if err := renderOut(result, flags.format, flags.out); err != nil {
		return err
	}

	// --- Step 10: Evaluate --fail-on ---
	return evalFailOn(flags.failOn, result.OverallRisk)
}

func runGenerate(flags generateFlags) error {
	// --- Step 1: Validate flags ---
	if err := validateGenerateFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	// --- Step 2: Load config and resolve model ---
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return codeError(3, "loading config: %s", err)
	}
	if err := config.Validate(cfg); err != nil {
		return codeError(3, "invalid config: %s", err)
	}
	modelStr := os.Getenv("DLCLINT_MODEL")
	if modelStr == "" {
		modelStr = cfg.Generator.Model
	}

	// --- Step 3: Load and redact answers ---
	logVerbose(flags.verbose, "Loading answers: %s", flags.answersPath)
	a, err := answers.Load(flags.answersPath)
	if err != nil {
		return codeError(3, "loading answers: %s", err)
	}
	a = redact.RedactAnswers(a)

	// --- Step 4: Classify and compile constraints ---
	cls := industry.Classify(a.Industries())
	cons, err := constraints.Compile(a, cls)
	if err != nil {
		return codeError(3, "compiling constraints: %s", err)
	}

	// --- Step 5: Build generator request ---
	req := &llm.Request{
		SystemPrompt: llm.BuildSystemPrompt(cons),
		UserPrompt:   llm.BuildUserPrompt(a),
		Temperature:  flags.temperature,
		MaxTokens:    flags.maxTokens,
	}

	// --- Step 6: Create provider ---
	provider, err := llm.NewProvider(modelStr)
	if err != nil {
		return codeError(4, "creating generator provider: %s", err)
	}

	// --- Step 7: Call generator with retry ---
	logVerbose(flags.verbose, "Calling generator: %s", modelStr)
	docs, callErr := generateWithRetry(context.Background(), provider, req, flags.verbose)
	if callErr != nil {
		return codeError(5, "%s", callErr)
	}

	// --- Step 8: Re-verify the generated set ---
	set := &docset.Set{
		Submission:    docset.Document{Content: string(docs.Submission)},
		PrivacyPolicy: docset.Document{Content: docs.PrivacyPolicy},
		Terms:         docset.Document{Content: docs.Terms},
	}
	disabled := make(map[string]bool)
	for _, id := range cfg.Checks.Disabled {
		disabled[id] = true
	}
	result := checker.Analyze(set, a, disabled)
	result.Meta.Tool = "dlclint"
	result.Meta.Version = version
	logVerbose(flags.verbose, "Generated set risk: %s", result.OverallRisk)

	// --- Step 9: Write output ---
	if flags.doc != "" {
		var content string
		switch schema.DocumentKind(flags.doc) {
		case schema.DocSubmission:
			content = string(docs.Submission)
		case schema.DocPrivacyPolicy:
			content = docs.PrivacyPolicy
		case schema.DocTerms:
			content = docs.Terms
		}
		if err := writeOut([]byte(content), flags.out); err != nil {
			return err
		}
	} else {
		envelope := struct {
			Documents *validate.GeneratedDocs `json:"documents"`
			Analysis  *schema.AnalysisResult  `json:"analysis"`
		}{docs, result}
		if err := printJSON(envelope, flags.out); err != nil {
			return err
		}
	}

	// --- Step 10: Evaluate --fail-on ---
	return evalFailOn(flags.failOn, result.OverallRisk)
}

// generateWithRetry attempts a generation call and retries once on output
// validation failure. Truncated responses are terminal: a second call with
// the same token budget would truncate again.
func generateWithRetry(ctx context.Context, provider llm.Provider, req *llm.Request, verbose bool) (*validate.GeneratedDocs, error) {
	resp, err := provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generator call failed: %w", err)
	}

	docs, parseErr := validate.ParseGenerated(resp.Content)
	if parseErr == nil {
		return docs, nil
	}

	logVerbose(verbose, "Output validation failed, retrying: %s", parseErr)

	// Append a sanitized error description (not the raw generator output)
	// to avoid prompt injection from the model's previous response.
	repairReq := *req
	repairReq.UserPrompt = req.UserPrompt + fmt.Sprintf(
		"\n\nYour previous response failed validation (error category: %q). Return only valid JSON matching the schema above, with every required phrase reproduced verbatim.",
		sanitizeErrForPrompt(parseErr),
	)

	resp2, err := provider.Complete(ctx, &repairReq)
	if err != nil {
		return nil, fmt.Errorf("generator retry call failed: %w", err)
	}

	docs, parseErr = validate.ParseGenerated(resp2.Content)
	if parseErr != nil {
		return nil, fmt.Errorf("invalid generator output after retry: %w", parseErr)
	}
	return docs, nil
}

// sanitizeErrForPrompt classifies a validation error into a fixed category
// string without echoing any generated content back into the retry prompt.
func sanitizeErrForPrompt(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "JSON parse failed"):
		return "JSON syntax error"
	case strings.HasPrefix(msg, "missing document"):
		return "missing document"
	case strings.HasPrefix(msg, "submission parse failed"):
		return "submission language is not valid JSON"
	case strings.HasPrefix(msg, "missing required phrase"):
		return "a mandatory consent phrase was altered or omitted"
	default:
		return "output validation error"
	}
}

func validateAnalyzeFlags(flags analyzeFlags) error {
	switch flags.format {
	case "json", "md":
	default:
		return fmt.Errorf("--format must be json or md, got %q", flags.format)
	}
	switch flags.severityThreshold {
	case "low", "medium", "high", "critical":
	default:
		return fmt.Errorf("--severity-threshold must be low, medium, high, or critical, got %q", flags.severityThreshold)
	}
	return validateFailOn(flags.failOn)
}

func validateGenerateFlags(flags generateFlags) error {
	if flags.doc != "" && !schema.IsValidDocumentKind(schema.DocumentKind(flags.doc)) {
		return fmt.Errorf("--doc must be submission_language, privacy_policy, or terms_conditions, got %q", flags.doc)
	}
	if flags.temperature < 0 || flags.temperature > 1 {
		return fmt.Errorf("--temperature must be between 0.0 and 1.0, got %g", flags.temperature)
	}
	if flags.maxTokens <= 0 {
		return fmt.Errorf("--max-tokens must be > 0, got %d", flags.maxTokens)
	}
	return validateFailOn(flags.failOn)
}

func validateFailOn(failOn string) error {
	if failOn == "" {
		return nil
	}
	switch schema.RiskLevel(failOn) {
	case schema.RiskNeedsAttention, schema.RiskAtRisk:
		return nil
	default:
		return fmt.Errorf("--fail-on must be needs_attention or at_risk, got %q", failOn)
	}
}

func evalFailOn(failOn string, level schema.RiskLevel) error {
	if failOn == "" {
		return nil
	}
	threshold := schema.RiskLevel(failOn)
	if schema.RiskOrdinal(level) >= schema.RiskOrdinal(threshold) {
		return codeError(2, "overall risk %s meets or exceeds --fail-on threshold %s", level, threshold)
	}
	return nil
}

func renderOut(result *schema.AnalysisResult, format, outPath string) error {
	renderer, err := render.NewRenderer(format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	outputBytes, err := renderer.Render(result)
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}
	return writeOut(outputBytes, outPath)
}

func printJSON(v any, outPath string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return codeError(3, "encoding output: %s", err)
	}
	return writeOut(b, outPath)
}

func writeOut(b []byte, outPath string) error {
	if outPath != "" {
		if err := os.WriteFile(outPath, b, 0o644); err != nil {
			return codeError(3, "writing output file: %s", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(b); err != nil {
		return codeError(3, "writing output: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(b) > 0 && b[len(b)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// logVerbose writes a message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}
