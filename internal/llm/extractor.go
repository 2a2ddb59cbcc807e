// Package llm - extractor.go turns raw resume text into a structured
// candidate profile.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/job-scout/internal/types"
)

// candidateProfileSchema validates the LLM output before it is decoded.
// Roles is the only required field; the query builder cannot work without it.
const candidateProfileSchema = `{
  "type": "object",
  "required": ["roles"],
  "properties": {
    "roles": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "seniority": {"type": "string"},
    "location_preference": {"type": "string"},
    "visa_or_work_auth": {"type": "string"},
    "remote_intent": {"type": "string", "enum": ["remote", "hybrid", "onsite", "any", ""]}
  },
  "additionalProperties": false
}`

const profileExtractionPrompt = `You are an expert resume parser. Extract a job-search profile from the resume text below.

Return ONLY valid JSON matching this exact structure:
{
  "roles": ["string"],            // 1-3 job titles this candidate should search for, most recent/senior first
  "skills": ["string"],           // key technical skills, verbatim from the resume
  "seniority": "string",          // e.g. "junior", "mid", "senior", "staff"; empty if unclear
  "location_preference": "string", // city or region the candidate prefers; empty if not stated
  "visa_or_work_auth": "string",  // work authorization status if stated; empty otherwise
  "remote_intent": "string"       // one of "remote", "hybrid", "onsite", "any"; empty if not stated
}

IMPORTANT:
- Derive roles from actual experience, do not invent titles the resume does not support.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Resume text:
"""
%s
"""`

// ProfileExtractor parses resume text into a CandidateProfile using an LLM.
type ProfileExtractor struct {
	client Client
	schema *gojsonschema.Schema
}

// NewProfileExtractor creates a ProfileExtractor backed by the given client.
func NewProfileExtractor(client Client) (*ProfileExtractor, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(candidateProfileSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile profile schema: %w", err)
	}
	return &ProfileExtractor{client: client, schema: schema}, nil
}

// Extract sends the resume text to the LLM and returns the validated
// candidate profile. The model output must pass schema validation before
// being decoded.
func (e *ProfileExtractor) Extract(ctx context.Context, resumeText string) (*types.CandidateProfile, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	prompt := fmt.Sprintf(profileExtractionPrompt, resumeText)
	raw, err := e.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to extract profile: %w", err)
	}

	raw = CleanJSONBlock(raw)
	if err := e.validate(raw); err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

func (e *ProfileExtractor) validate(raw string) error {
	result, err := e.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to validate profile JSON: %w", err)
	}
	if !result.Valid() {
		var issues []string
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return fmt.Errorf("profile JSON failed validation: %s", strings.Join(issues, "; "))
	}
	return nil
}
