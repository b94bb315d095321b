package redact

import (
	"regexp"
	"strings"
	"sync"
)

// secretAlternatives are credential-shaped token formats curated from
// gitleaks, one alternative per service. They are combined into a single
// alternation so the buffer is scanned once, leftmost match first.
var secretAlternatives = []string{
	// AI/ML platforms
	`sk-ant-api\d{2}-[a-zA-Z0-9_-]{20,}`, // Anthropic
	`sk-proj-[a-zA-Z0-9]{20,}`,           // OpenAI project key
	`sk-or-[a-zA-Z0-9_-]{20,}`,           // OpenRouter
	// Cloud providers
	`AKIA[0-9A-Z]{16}`,      // AWS access key ID
	`AIza[0-9A-Za-z_-]{35}`, // GCP API key
	// Code hosting — GitHub
	`ghp_[0-9a-zA-Z]{36}`,        // GitHub PAT
	`gho_[0-9a-zA-Z]{36}`,        // GitHub OAuth
	`ghs_[0-9a-zA-Z]{36,}`,       // GitHub server-to-server
	`ghu_[0-9a-zA-Z]{36}`,        // GitHub user-to-server
	`github_pat_[0-9a-zA-Z_]{82}`, // GitHub fine-grained PAT
	// Code hosting — GitLab
	`glpat-[0-9a-zA-Z_-]{20,}`,      // GitLab PAT
	`glptt-[0-9a-f]{40}`,            // GitLab pipeline trigger
	`GR1348941[0-9a-zA-Z_-]{20,}`,   // GitLab runner registration
	// Communication — Slack
	`xoxb-[0-9]+-[0-9A-Za-z-]+`, // Slack bot token
	`xoxp-[0-9]+-[0-9A-Za-z-]+`, // Slack user token
	`xoxa-[0-9]+-[0-9A-Za-z-]+`, // Slack app token
	`xoxe-[0-9]+-[0-9A-Za-z-]+`, // Slack config token
	// Payment — Stripe
	`(?:sk|rk)_(?:live|test|prod)_[0-9a-zA-Z]{24,}`,
	// Package registries
	`npm_[0-9a-zA-Z]{36}`,     // npm access token
	`pypi-[0-9a-zA-Z_-]{16,}`, // PyPI API token
	// SaaS tools
	`SG\.[0-9a-zA-Z_-]{22}\.[0-9a-zA-Z_-]{43}`, // SendGrid API key
	`SK[0-9a-fA-F]{32}`,                        // Twilio API key
	`PMAK-[0-9a-fA-F]{24}-[0-9a-fA-F]{34}`,     // Postman API key
	`lin_api_[a-zA-Z0-9]{40}`,                  // Linear API key
	`dp\.pt\.[a-zA-Z0-9]{43}`,                  // Doppler CLI token
	`dapi[0-9a-f]{32}`,                         // Databricks access token
	// Infrastructure — DigitalOcean
	`dop_v1_[a-f0-9]{64}`, // PAT
	`doo_v1_[a-f0-9]{64}`, // OAuth
	`dor_v1_[a-f0-9]{64}`, // refresh
	// Infrastructure — Hashicorp Vault
	`hvs\.[a-zA-Z0-9_-]{24,}`,  // service token
	`hvb\.[a-zA-Z0-9_-]{100,}`, // batch token
	// Infrastructure — other
	`pul-[a-f0-9]{40}`, // Pulumi access token
	// E-commerce — Shopify
	`shpss_[0-9a-fA-F]{32}`, // shared secret
	`shpat_[0-9a-fA-F]{32}`, // access token
	`shpca_[0-9a-fA-F]{32}`, // custom app
	`shppa_[0-9a-fA-F]{32}`, // private app
	// Databases
	`mongodb(?:\+srv)?://[^:@\s]{3,}:[^@\s]{3,}@[^\s]+`, // MongoDB with creds
	// Monitoring — Grafana
	`glc_[A-Za-z0-9+/]{32,}={0,2}`,        // Grafana Cloud API key
	`glsa_[A-Za-z0-9]{32}_[A-Fa-f0-9]{8}`, // Grafana service account
	// Platform
	`pscale_tkn_[a-zA-Z0-9_.-]{43}`,   // PlanetScale token
	`pscale_oauth_[a-zA-Z0-9_.-]{43}`, // PlanetScale OAuth
	// CMS
	`CFPAT-[a-zA-Z0-9_-]{43}`, // Contentful PAT
	// Encryption
	`AGE-SECRET-KEY-1[qpzry9x8gf2tvdw0s3jn54khce6mua7l]{58}`, // age secret key
	`-----BEGIN[A-Z ]*PRIVATE KEY-----`,                      // PEM private key header
}

// secretPattern compiles the alternation once per process. The compiled
// value is immutable and shared by every call.
var secretPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(strings.Join(secretAlternatives, "|"))
})

// StripSecrets replaces every credential-shaped match in content with
// the secret placeholder and returns the matches in document order.
// Run it on section-stripped content so TLP placeholders are inert and
// hidden secrets are not double-counted.
func StripSecrets(content string) (string, []Span) {
	locs := secretPattern().FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content, nil
	}

	var b strings.Builder
	spans := make([]Span, 0, len(locs))
	last := 0
	for _, loc := range locs {
		b.WriteString(content[last:loc[0]])
		b.WriteString(SecretPlaceholder)
		spans = append(spans, Span{Secret, content[loc[0]:loc[1]]})
		last = loc[1]
	}
	b.WriteString(content[last:])

	return b.String(), spans
}
