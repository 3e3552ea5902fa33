package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, value string) *Email {
	t.Helper()
	email, err := NewEmail(value)
	require.NoError(t, err)
	return &email
}

func mustPhone(t *testing.T, raw string) *Phone {
	t.Helper()
	phone, err := ParseBrazilianPhone(raw)
	require.NoError(t, err)
	return &phone
}

func TestNewContactInfoRequiresAtLeastOneContact(t *testing.T) {
	_, err := NewContactInfo(nil, nil, "", nil)
	assert.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "contact_info", validationErr.Field)

	// Qualquer meio sozinho basta.
	_, err = NewContactInfo(mustEmail(t, "a@b.com"), nil, "", nil)
	assert.NoError(t, err)
	_, err = NewContactInfo(nil, mustPhone(t, "11999998888"), "", nil)
	assert.NoError(t, err)
	_, err = NewContactInfo(nil, nil, "www.noivas.com.br", nil)
	assert.NoError(t, err)
	_, err = NewContactInfo(nil, nil, "", map[SocialMediaType]string{SocialMediaInstagram: "@noivas"})
	assert.NoError(t, err)
}

func TestNewContactInfoValidatesWebsiteAndHandles(t *testing.T) {
	_, err := NewContactInfo(nil, nil, "not a website", nil)
	assert.Error(t, err)

	_, err = NewContactInfo(nil, nil, "https://www.noivas.com.br/catalogo", nil)
	assert.NoError(t, err)

	_, err = NewContactInfo(nil, nil, "", map[SocialMediaType]string{SocialMediaInstagram: "  "})
	assert.Error(t, err)

	_, err = NewContactInfo(nil, nil, "", map[SocialMediaType]string{SocialMediaType("ORKUT"): "@x"})
	assert.Error(t, err)
}

func TestContactInfoCompleteness(t *testing.T) {
	complete, err := NewContactInfo(mustEmail(t, "a@b.com"), mustPhone(t, "11999998888"), "", nil)
	require.NoError(t, err)
	assert.True(t, complete.IsComplete())

	onlyEmail, err := NewContactInfo(mustEmail(t, "a@b.com"), nil, "", nil)
	require.NoError(t, err)
	assert.False(t, onlyEmail.IsComplete())
}

func TestContactInfoCompletenessScore(t *testing.T) {
	onlyWebsite, err := NewContactInfo(nil, nil, "www.noivas.com.br", nil)
	require.NoError(t, err)
	assert.Equal(t, 20, onlyWebsite.CompletenessScore())

	// Email gratuito + fixo: 30 + 30, sem bônus.
	basic, err := NewContactInfo(mustEmail(t, "a@gmail.com"), mustPhone(t, "1133334444"), "", nil)
	require.NoError(t, err)
	assert.Equal(t, 60, basic.CompletenessScore())

	// Corporativo + celular + website + rede: 30+30+20+10+5+5, teto 100.
	full, err := NewContactInfo(
		mustEmail(t, "vendas@noivas.com.br"),
		mustPhone(t, "11999998888"),
		"www.noivas.com.br",
		map[SocialMediaType]string{SocialMediaInstagram: "@noivas"},
	)
	require.NoError(t, err)
	assert.Equal(t, 100, full.CompletenessScore())
}

func TestContactInfoPrimaryContactOrder(t *testing.T) {
	full, err := NewContactInfo(
		mustEmail(t, "vendas@noivas.com.br"),
		mustPhone(t, "11999998888"),
		"www.noivas.com.br",
		map[SocialMediaType]string{SocialMediaInstagram: "@noivas"},
	)
	require.NoError(t, err)
	assert.Equal(t, "vendas@noivas.com.br", full.PrimaryContact())

	phoneFirst, err := NewContactInfo(nil, mustPhone(t, "11999998888"), "www.noivas.com.br", nil)
	require.NoError(t, err)
	assert.Equal(t, "(11) 99999-8888", phoneFirst.PrimaryContact())

	onlySocial, err := NewContactInfo(nil, nil, "", map[SocialMediaType]string{SocialMediaInstagram: "@noivas"})
	require.NoError(t, err)
	assert.Equal(t, "@noivas", onlySocial.PrimaryContact())
}

func TestContactInfoWithAndWithout(t *testing.T) {
	info, err := NewContactInfo(mustEmail(t, "a@b.com"), nil, "", nil)
	require.NoError(t, err)

	withPhone, err := info.WithPhone(*mustPhone(t, "11999998888"))
	require.NoError(t, err)
	assert.True(t, withPhone.IsComplete())
	assert.False(t, info.HasPhone(), "original não muda")

	withSocial, err := info.WithSocialMedia(SocialMediaInstagram, "@noivas")
	require.NoError(t, err)
	handle, ok := withSocial.SocialMediaHandle(SocialMediaInstagram)
	assert.True(t, ok)
	assert.Equal(t, "@noivas", handle)

	// Remover a única rede de quem só tem rede deixa o contato vazio.
	onlySocial, err := NewContactInfo(nil, nil, "", map[SocialMediaType]string{SocialMediaInstagram: "@noivas"})
	require.NoError(t, err)
	_, err = onlySocial.WithoutSocialMedia(SocialMediaInstagram)
	assert.Error(t, err)
}

func TestContactInfoJSONRoundTrip(t *testing.T) {
	info, err := NewContactInfo(
		mustEmail(t, "vendas@noivas.com.br"),
		mustPhone(t, "11999998888"),
		"www.noivas.com.br",
		map[SocialMediaType]string{SocialMediaInstagram: "@noivas"},
	)
	require.NoError(t, err)

	data, err := json.Marshal(info)
	require.NoError(t, err)

	var decoded ContactInfo
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, info.PrimaryContact(), decoded.PrimaryContact())
	assert.Equal(t, info.CompletenessScore(), decoded.CompletenessScore())
	assert.Equal(t, info.SocialMedia(), decoded.SocialMedia())
}
