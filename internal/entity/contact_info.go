package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var websitePattern = regexp.MustCompile(
	`^(https?://)?(www\.)?[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]\.[a-zA-Z]{2,}(/.*)?$`)

// ContactInfo agrupa os meios de contato de uma empresa. Invariante: pelo
// menos um meio de contato presente.
type ContactInfo struct {
	email       *Email
	phone       *Phone
	website     string
	socialMedia map[SocialMediaType]string
}

// NewContactInfo valida e constrói um ContactInfo. email e phone podem ser nil,
// website pode ser vazio e socialMedia pode ser nil.
func NewContactInfo(email *Email, phone *Phone, website string, socialMedia map[SocialMediaType]string) (ContactInfo, error) {
	website = strings.TrimSpace(website)
	if email == nil && phone == nil && website == "" && len(socialMedia) == 0 {
		return ContactInfo{}, &ValidationError{"contact_info", "must have at least one contact method"}
	}
	if website != "" && !websitePattern.MatchString(website) {
		return ContactInfo{}, &ValidationError{"website", fmt.Sprintf("invalid website: %s", website)}
	}

	media := make(map[SocialMediaType]string, len(socialMedia))
	for t, handle := range socialMedia {
		if _, err := ParseSocialMediaType(string(t)); err != nil {
			return ContactInfo{}, err
		}
		if strings.TrimSpace(handle) == "" {
			return ContactInfo{}, &ValidationError{"social_media", fmt.Sprintf("%s handle cannot be empty", t)}
		}
		media[t] = handle
	}

	info := ContactInfo{website: website, socialMedia: media}
	if email != nil {
		e := *email
		info.email = &e
	}
	if phone != nil {
		p := *phone
		info.phone = &p
	}
	return info, nil
}

func (c ContactInfo) Email() (Email, bool) {
	if c.email == nil {
		return Email{}, false
	}
	return *c.email, true
}

func (c ContactInfo) Phone() (Phone, bool) {
	if c.phone == nil {
		return Phone{}, false
	}
	return *c.phone, true
}

func (c ContactInfo) Website() string { return c.website }

// SocialMedia retorna uma cópia do mapa de handles.
func (c ContactInfo) SocialMedia() map[SocialMediaType]string {
	media := make(map[SocialMediaType]string, len(c.socialMedia))
	for t, handle := range c.socialMedia {
		media[t] = handle
	}
	return media
}

func (c ContactInfo) SocialMediaHandle(t SocialMediaType) (string, bool) {
	handle, ok := c.socialMedia[t]
	return handle, ok
}

func (c ContactInfo) HasEmail() bool       { return c.email != nil }
func (c ContactInfo) HasPhone() bool       { return c.phone != nil }
func (c ContactInfo) HasWebsite() bool     { return c.website != "" }
func (c ContactInfo) HasSocialMedia() bool { return len(c.socialMedia) > 0 }

// IsComplete indica se tem email e telefone.
func (c ContactInfo) IsComplete() bool { return c.HasEmail() && c.HasPhone() }

// HasCorporateEmail indica email que não é de provedor gratuito.
func (c ContactInfo) HasCorporateEmail() bool {
	return c.email != nil && c.email.IsCorporate()
}

// HasMobilePhone indica telefone celular.
func (c ContactInfo) HasMobilePhone() bool {
	return c.phone != nil && c.phone.IsMobile()
}

// PrimaryContact retorna o contato principal na ordem email, telefone,
// website, primeira rede social.
func (c ContactInfo) PrimaryContact() string {
	switch {
	case c.HasEmail():
		return c.email.String()
	case c.HasPhone():
		return c.phone.String()
	case c.HasWebsite():
		return c.website
	case c.HasSocialMedia():
		for _, t := range SocialMediaTypes() {
			if handle, ok := c.socialMedia[t]; ok {
				return handle
			}
		}
	}
	return ""
}

// AllContacts lista todos os contatos disponíveis, para relatórios.
func (c ContactInfo) AllContacts() []string {
	var contacts []string
	if c.email != nil {
		contacts = append(contacts, "Email: "+c.email.String())
	}
	if c.phone != nil {
		contacts = append(contacts, "Phone: "+c.phone.String())
	}
	if c.website != "" {
		contacts = append(contacts, "Website: "+c.website)
	}
	for _, t := range SocialMediaTypes() {
		if handle, ok := c.socialMedia[t]; ok {
			contacts = append(contacts, t.DisplayName()+": "+handle)
		}
	}
	return contacts
}

// CompletenessScore calcula uma pontuação de completude (0-100):
// email 30, telefone 30, website 20, rede social 10,
// bônus de 5 por email corporativo e 5 por celular.
func (c ContactInfo) CompletenessScore() int {
	score := 0
	if c.HasEmail() {
		score += 30
	}
	if c.HasPhone() {
		score += 30
	}
	if c.HasWebsite() {
		score += 20
	}
	if c.HasSocialMedia() {
		score += 10
	}
	if c.HasCorporateEmail() {
		score += 5
	}
	if c.HasMobilePhone() {
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

// WithEmail retorna uma cópia com o email substituído.
func (c ContactInfo) WithEmail(email Email) (ContactInfo, error) {
	return NewContactInfo(&email, c.phone, c.website, c.socialMedia)
}

// WithPhone retorna uma cópia com o telefone substituído.
func (c ContactInfo) WithPhone(phone Phone) (ContactInfo, error) {
	return NewContactInfo(c.email, &phone, c.website, c.socialMedia)
}

// WithWebsite retorna uma cópia com o website substituído.
func (c ContactInfo) WithWebsite(website string) (ContactInfo, error) {
	return NewContactInfo(c.email, c.phone, website, c.socialMedia)
}

// WithSocialMedia retorna uma cópia com o handle adicionado ou substituído.
func (c ContactInfo) WithSocialMedia(t SocialMediaType, handle string) (ContactInfo, error) {
	media := c.SocialMedia()
	media[t] = handle
	return NewContactInfo(c.email, c.phone, c.website, media)
}

// WithoutSocialMedia retorna uma cópia sem o handle da rede informada.
// Falha se a remoção deixar o contato sem nenhum meio.
func (c ContactInfo) WithoutSocialMedia(t SocialMediaType) (ContactInfo, error) {
	media := c.SocialMedia()
	delete(media, t)
	return NewContactInfo(c.email, c.phone, c.website, media)
}

type contactInfoJSON struct {
	Email       *Email            `json:"email,omitempty"`
	Phone       *Phone            `json:"phone,omitempty"`
	Website     string            `json:"website,omitempty"`
	SocialMedia map[string]string `json:"social_media,omitempty"`
}

func (c ContactInfo) MarshalJSON() ([]byte, error) {
	doc := contactInfoJSON{
		Email:   c.email,
		Phone:   c.phone,
		Website: c.website,
	}
	if len(c.socialMedia) > 0 {
		doc.SocialMedia = make(map[string]string, len(c.socialMedia))
		for t, handle := range c.socialMedia {
			doc.SocialMedia[string(t)] = handle
		}
	}
	return json.Marshal(doc)
}

func (c *ContactInfo) UnmarshalJSON(data []byte) error {
	var doc contactInfoJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var media map[SocialMediaType]string
	if len(doc.SocialMedia) > 0 {
		media = make(map[SocialMediaType]string, len(doc.SocialMedia))
		for name, handle := range doc.SocialMedia {
			t, err := ParseSocialMediaType(name)
			if err != nil {
				return err
			}
			media[t] = handle
		}
	}

	parsed, err := NewContactInfo(doc.Email, doc.Phone, doc.Website, media)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
