package entity

import "fmt"

// LeadSource é a origem do Lead, usada para análise de ROI por canal.
type LeadSource string

const (
	SourceManualEntry  LeadSource = "MANUAL_ENTRY"
	SourceGooglePlaces LeadSource = "GOOGLE_PLACES"
	SourceReferral     LeadSource = "REFERRAL"
	SourceWebsite      LeadSource = "WEBSITE"
	SourceColdCall     LeadSource = "COLD_CALL"
	SourceSocialMedia  LeadSource = "SOCIAL_MEDIA"
)

func LeadSources() []LeadSource {
	return []LeadSource{
		SourceManualEntry,
		SourceGooglePlaces,
		SourceReferral,
		SourceWebsite,
		SourceColdCall,
		SourceSocialMedia,
	}
}

func ParseLeadSource(value string) (LeadSource, error) {
	switch LeadSource(value) {
	case SourceManualEntry, SourceGooglePlaces, SourceReferral,
		SourceWebsite, SourceColdCall, SourceSocialMedia:
		return LeadSource(value), nil
	default:
		return "", &ValidationError{"source", fmt.Sprintf("unknown lead source: %s", value)}
	}
}

func (s LeadSource) String() string { return string(s) }

// IsAutomated indica origem que não requer intervenção manual.
func (s LeadSource) IsAutomated() bool {
	switch s {
	case SourceGooglePlaces, SourceWebsite, SourceSocialMedia:
		return true
	default:
		return false
	}
}

// RequiresVerification indica origem cujos dados precisam de verificação adicional.
func (s LeadSource) RequiresVerification() bool {
	switch s {
	case SourceGooglePlaces, SourceColdCall:
		return true
	default:
		return false
	}
}

func (s LeadSource) DisplayName() string {
	switch s {
	case SourceManualEntry:
		return "Manual Entry"
	case SourceGooglePlaces:
		return "Google Places"
	case SourceReferral:
		return "Referral"
	case SourceWebsite:
		return "Website"
	case SourceColdCall:
		return "Cold Call"
	case SourceSocialMedia:
		return "Social Media"
	default:
		return string(s)
	}
}

// Priority retorna a prioridade da origem (maior = melhor lead).
func (s LeadSource) Priority() int {
	switch s {
	case SourceReferral:
		return 5
	case SourceWebsite:
		return 4
	case SourceSocialMedia:
		return 3
	case SourceManualEntry, SourceGooglePlaces:
		return 2
	case SourceColdCall:
		return 1
	default:
		return 0
	}
}
