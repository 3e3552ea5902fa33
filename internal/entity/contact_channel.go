package entity

import "fmt"

// ContactChannel é o meio usado para contatar um Lead.
type ContactChannel string

const (
	ChannelPhone       ContactChannel = "PHONE"
	ChannelEmail       ContactChannel = "EMAIL"
	ChannelWhatsApp    ContactChannel = "WHATSAPP"
	ChannelInPerson    ContactChannel = "IN_PERSON"
	ChannelWebsite     ContactChannel = "WEBSITE"
	ChannelSocialMedia ContactChannel = "SOCIAL_MEDIA"
)

func ContactChannels() []ContactChannel {
	return []ContactChannel{
		ChannelPhone,
		ChannelEmail,
		ChannelWhatsApp,
		ChannelInPerson,
		ChannelWebsite,
		ChannelSocialMedia,
	}
}

func ParseContactChannel(value string) (ContactChannel, error) {
	switch ContactChannel(value) {
	case ChannelPhone, ChannelEmail, ChannelWhatsApp,
		ChannelInPerson, ChannelWebsite, ChannelSocialMedia:
		return ContactChannel(value), nil
	default:
		return "", &ValidationError{"channel", fmt.Sprintf("unknown contact channel: %s", value)}
	}
}

func (c ContactChannel) String() string { return string(c) }

// RequiresPersonalContact indica canal de contato pessoal direto.
func (c ContactChannel) RequiresPersonalContact() bool {
	switch c {
	case ChannelPhone, ChannelWhatsApp, ChannelInPerson:
		return true
	default:
		return false
	}
}

// IsDigital indica canal digital.
func (c ContactChannel) IsDigital() bool {
	return c != ChannelInPerson
}

// IsRealTime indica comunicação em tempo real.
func (c ContactChannel) IsRealTime() bool {
	switch c {
	case ChannelPhone, ChannelWhatsApp, ChannelInPerson, ChannelWebsite:
		return true
	default:
		return false
	}
}

func (c ContactChannel) DisplayName() string {
	switch c {
	case ChannelPhone:
		return "Phone"
	case ChannelEmail:
		return "Email"
	case ChannelWhatsApp:
		return "WhatsApp"
	case ChannelInPerson:
		return "In Person"
	case ChannelWebsite:
		return "Website"
	case ChannelSocialMedia:
		return "Social Media"
	default:
		return string(c)
	}
}

// EffectivenessRating retorna a efetividade esperada do canal (1-5).
func (c ContactChannel) EffectivenessRating() int {
	switch c {
	case ChannelInPerson:
		return 5
	case ChannelPhone, ChannelWhatsApp:
		return 4
	case ChannelWebsite:
		return 3
	case ChannelEmail, ChannelSocialMedia:
		return 2
	default:
		return 0
	}
}
