package entity

import "fmt"

// SocialMediaType é uma rede social suportada para contato com leads.
type SocialMediaType string

const (
	SocialMediaFacebook  SocialMediaType = "FACEBOOK"
	SocialMediaInstagram SocialMediaType = "INSTAGRAM"
	SocialMediaLinkedIn  SocialMediaType = "LINKEDIN"
	SocialMediaTwitter   SocialMediaType = "TWITTER"
	SocialMediaWhatsApp  SocialMediaType = "WHATSAPP"
)

// SocialMediaTypes retorna todas as redes suportadas, em ordem estável.
func SocialMediaTypes() []SocialMediaType {
	return []SocialMediaType{
		SocialMediaFacebook,
		SocialMediaInstagram,
		SocialMediaLinkedIn,
		SocialMediaTwitter,
		SocialMediaWhatsApp,
	}
}

func ParseSocialMediaType(value string) (SocialMediaType, error) {
	switch SocialMediaType(value) {
	case SocialMediaFacebook, SocialMediaInstagram, SocialMediaLinkedIn,
		SocialMediaTwitter, SocialMediaWhatsApp:
		return SocialMediaType(value), nil
	default:
		return "", &ValidationError{"social_media", fmt.Sprintf("unknown social media type: %s", value)}
	}
}

func (t SocialMediaType) String() string { return string(t) }

// BaseURL retorna a URL base da plataforma.
func (t SocialMediaType) BaseURL() string {
	switch t {
	case SocialMediaFacebook:
		return "https://facebook.com/"
	case SocialMediaInstagram:
		return "https://instagram.com/"
	case SocialMediaLinkedIn:
		return "https://linkedin.com/company/"
	case SocialMediaTwitter:
		return "https://twitter.com/"
	case SocialMediaWhatsApp:
		return "https://wa.me/"
	default:
		return ""
	}
}

// RequiresHandle indica se a plataforma exige um handle/username.
// WhatsApp usa número de telefone.
func (t SocialMediaType) RequiresHandle() bool {
	return t != SocialMediaWhatsApp
}

func (t SocialMediaType) DisplayName() string {
	switch t {
	case SocialMediaFacebook:
		return "Facebook"
	case SocialMediaInstagram:
		return "Instagram"
	case SocialMediaLinkedIn:
		return "LinkedIn"
	case SocialMediaTwitter:
		return "Twitter"
	case SocialMediaWhatsApp:
		return "WhatsApp"
	default:
		return string(t)
	}
}

// IsProfessional indica plataforma de perfil profissional.
func (t SocialMediaType) IsProfessional() bool { return t == SocialMediaLinkedIn }

// IsVisual indica plataforma primariamente visual.
func (t SocialMediaType) IsVisual() bool { return t == SocialMediaInstagram }

// AllowsDirectMessaging indica se a plataforma permite mensagem direta.
func (t SocialMediaType) AllowsDirectMessaging() bool {
	return t != SocialMediaTwitter
}

// ProfileURL retorna a URL completa do perfil para um handle.
func (t SocialMediaType) ProfileURL(handle string) string {
	return t.BaseURL() + handle
}
