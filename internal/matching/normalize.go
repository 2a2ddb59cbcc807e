package matching

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fallback key chains per output field. Upstream postings drift between
// JSearch's canonical names and generic aliases, so each field is resolved by
// trying keys in priority order and taking the first non-empty value.
var (
	titleKeys = []string{"job_title", "title", "position", "name"}

	// job_google_link is semantically an apply URL, but the upstream feed
	// sometimes omits job_id and it is the only stable-ish identifier left.
	externalIDKeys = []string{"job_id", "id", "job_google_link"}

	applyURLKeys = []string{"job_apply_link", "apply_url", "url", "link"}

	companyNameKeys    = []string{"employer_name", "company_name", "company"}
	companyWebsiteKeys = []string{"employer_website", "company_website", "website"}

	locationKeys = []string{"job_location", "location", "job_city"}
	countryKeys  = []string{"job_country", "country"}
	cityKeys     = []string{"job_city", "city"}
	regionKeys   = []string{"job_state", "state", "region"}

	employmentTypeKeys = []string{"job_employment_type", "employment_type", "type"}
	descriptionKeys    = []string{"job_description", "description"}

	postedAtKeys = []string{"job_posted_at_datetime_utc", "posted_at", "job_posted_at", "date_posted"}

	salaryMinKeys      = []string{"job_min_salary", "salary_min", "min_salary"}
	salaryMaxKeys      = []string{"job_max_salary", "salary_max", "max_salary"}
	salaryCurrencyKeys = []string{"job_salary_currency", "salary_currency", "currency"}
	salaryPeriodKeys   = []string{"job_salary_period", "salary_period"}

	remoteFlagKeys = []string{"job_is_remote", "is_remote", "remote"}
)

// timestampLayouts are tried in order when parsing upstream date strings.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Normalize maps one raw upstream record into a NormalizedJob. The second
// return value is false when the record is unusable (not a mapping, or no
// non-empty title). Malformed upstream items are an expected steady-state
// condition, so they are filtered rather than reported as errors.
func Normalize(raw any) (*NormalizedJob, bool) {
	record, ok := asRawJob(raw)
	if !ok {
		return nil, false
	}

	title := firstString(record, titleKeys...)
	if title == "" {
		return nil, false
	}

	job := &NormalizedJob{
		Source:         SourceJSearch,
		ExternalJobID:  firstString(record, externalIDKeys...),
		ApplyURL:       firstString(record, applyURLKeys...),
		Title:          title,
		CompanyName:    firstString(record, companyNameKeys...),
		CompanyWebsite: firstString(record, companyWebsiteKeys...),
		LocationText:   firstString(record, locationKeys...),
		Country:        firstString(record, countryKeys...),
		City:           firstString(record, cityKeys...),
		Region:         firstString(record, regionKeys...),
		EmploymentType: firstString(record, employmentTypeKeys...),
		Description:    cleanDescription(firstString(record, descriptionKeys...)),
		PostedAt:       firstTime(record, postedAtKeys...),
		SalaryMin:      firstNumber(record, salaryMinKeys...),
		SalaryMax:      firstNumber(record, salaryMaxKeys...),
		SalaryCurrency: firstString(record, salaryCurrencyKeys...),
		SalaryPeriod:   firstString(record, salaryPeriodKeys...),
		Raw:            record,
	}

	job.IsRemote = firstBool(record, remoteFlagKeys...) ||
		strings.Contains(strings.ToLower(job.LocationText), "remote")
	job.RemoteType = inferRemoteType(job.IsRemote, job.LocationText)

	return job, true
}

// inferRemoteType classifies the work arrangement. Checks run in fixed
// priority order and only the first match fires.
func inferRemoteType(isRemote bool, locationText string) RemoteType {
	if isRemote {
		return RemoteTypeRemote
	}
	loc := strings.ToLower(locationText)
	switch {
	case strings.Contains(loc, "hybrid"):
		return RemoteTypeHybrid
	case strings.Contains(loc, "on-site"), strings.Contains(loc, "onsite"), strings.Contains(loc, "on site"):
		return RemoteTypeOnsite
	default:
		return RemoteTypeUnknown
	}
}

// asRawJob accepts the map shapes a JSON decoder can produce.
func asRawJob(raw any) (RawJob, bool) {
	switch m := raw.(type) {
	case RawJob:
		return m, m != nil
	case map[string]any:
		return RawJob(m), m != nil
	default:
		return nil, false
	}
}

// firstString returns the first trimmed non-empty string value among keys.
func firstString(record RawJob, keys ...string) string {
	for _, key := range keys {
		value, ok := record[key]
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// firstNumber returns the first finite numeric value among keys. Numeric
// strings are accepted; anything unparseable is treated as absent.
func firstNumber(record RawJob, keys ...string) *float64 {
	for _, key := range keys {
		value, ok := record[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return &v
			}
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
				return &f
			}
		}
	}
	return nil
}

// firstTime returns the first parseable timestamp among keys, normalized to
// UTC. Invalid dates are treated as absent.
func firstTime(record RawJob, keys ...string) *time.Time {
	for _, key := range keys {
		raw := firstString(record, key)
		if raw == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			t, err := time.Parse(layout, raw)
			if err == nil {
				utc := t.UTC()
				return &utc
			}
		}
	}
	return nil
}

// firstBool returns true if any key holds an explicit true value. Booleans
// and the string "true" (case-insensitive) both count.
func firstBool(record RawJob, keys ...string) bool {
	for _, key := range keys {
		value, ok := record[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case bool:
			if v {
				return true
			}
		case string:
			if strings.EqualFold(strings.TrimSpace(v), "true") {
				return true
			}
		}
	}
	return false
}

// cleanDescription strips HTML markup from descriptions that arrive as
// fragments rather than plain text.
func cleanDescription(description string) string {
	if !strings.Contains(description, "<") || !strings.Contains(description, ">") {
		return description
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return description
	}
	return strings.TrimSpace(doc.Text())
}
