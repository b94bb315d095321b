package redact

// Pipeline applies the two redaction stages in their one valid order:
// TLP sections first, then secrets. The ordering is a structural
// guarantee, not a calling convention — secrets hidden inside a TLP block
// are already gone when the secret scan runs, and placeholder text can
// never be matched as a secret.
type Pipeline struct{}

// Result is the outcome of running content through the pipeline.
type Result struct {
	Output   string
	Sections []Span // block and inline spans, document order
	Secrets  []Span // secret matches in the section-stripped content
}

// Apply redacts content for presentation.
func (Pipeline) Apply(content string) Result {
	stripped, sections := StripSections(content)
	output, secrets := StripSecrets(stripped)
	return Result{Output: output, Sections: sections, Secrets: secrets}
}
