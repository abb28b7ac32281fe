package submit_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *Request {
	return &Request{
		SessionID:      "sess-1",
		FormToken:      "token",
		SelectedDate:   "2025-09-20",
		Attendees:      "4",
		Session:        "evening",
		TentPreference: "any",
		SelectedTent:   "",
		FirstName:      "Max",
		LastName:       "Mustermann",
		Email:          "Max@Example.COM",
		Phone:          "+49 151 00000000",
	}
}

func TestValidatePayload_Valid(t *testing.T) {
	verr := validatePayload(sanitize(validRequest()))
	assert.Nil(t, verr)
}

func TestValidatePayload_CollectsAllViolations(t *testing.T) {
	verr := validatePayload(sanitize(&Request{}))
	require.NotNil(t, verr)

	for _, field := range []string{
		fieldSelectedDate, fieldAttendees, fieldSession, fieldTentPreference,
		fieldFirstName, fieldLastName, fieldEmail, fieldPhone,
	} {
		assert.Equal(t, msgRequired, verr.Fields[field], "field %s", field)
	}
}

func TestValidatePayload_InvalidEmail(t *testing.T) {
	req := validRequest()
	req.Email = "not-an-email"

	verr := validatePayload(sanitize(req))
	require.NotNil(t, verr)
	assert.Equal(t, msgInvalidEmail, verr.Fields[fieldEmail])
	assert.Len(t, verr.Fields, 1)
}

func TestValidatePayload_SpecificTentRequiresSelection(t *testing.T) {
	req := validRequest()
	req.TentPreference = "specific"

	verr := validatePayload(sanitize(req))
	require.NotNil(t, verr)
	assert.Equal(t, msgSelectTent, verr.Fields[fieldSelectedTent])

	req.SelectedTent = "any"
	verr = validatePayload(sanitize(req))
	require.NotNil(t, verr)
	assert.Equal(t, msgSelectTent, verr.Fields[fieldSelectedTent])

	req.SelectedTent = "hofbrau"
	assert.Nil(t, validatePayload(sanitize(req)))
}

func TestValidatePayload_TamperedAttendees(t *testing.T) {
	for _, raw := range []string{"0", "-3", "abc"} {
		req := validRequest()
		req.Attendees = raw

		verr := validatePayload(sanitize(req))
		require.NotNil(t, verr, "attendees=%q", raw)
		assert.Equal(t, msgInvalidCount, verr.Fields[fieldAttendees])
	}
}

func TestValidatePayload_MalformedDate(t *testing.T) {
	req := validRequest()
	req.SelectedDate = "20.09.2025"

	verr := validatePayload(sanitize(req))
	require.NotNil(t, verr)
	assert.Equal(t, msgInvalidDate, verr.Fields[fieldSelectedDate])
}

func TestValidatePayload_UnknownEnums(t *testing.T) {
	req := validRequest()
	req.Session = "midnight"
	req.TentPreference = "vip"

	verr := validatePayload(sanitize(req))
	require.NotNil(t, verr)
	assert.Equal(t, msgRequired, verr.Fields[fieldSession])
	assert.Equal(t, msgRequired, verr.Fields[fieldTentPreference])
}

func TestSanitize_StripsHTMLAndNormalizes(t *testing.T) {
	req := validRequest()
	req.FirstName = "  <script>alert(1)</script>Max  "
	req.Email = "  MAX@EXAMPLE.COM "
	req.Message = "<b>Bitte</b> Fensterplatz"

	p := sanitize(req)
	assert.Equal(t, "Max", p.FirstName)
	assert.Equal(t, "max@example.com", p.Email)
	assert.Equal(t, "Bitte Fensterplatz", p.Message)
	assert.Equal(t, 4, p.Attendees)
}

func TestSanitize_KeepsPlainTextIntact(t *testing.T) {
	req := validRequest()
	req.Company = "Müller & Söhne"
	req.Message = `Tisch "am Fenster" bitte, Budget < 500€`

	p := sanitize(req)
	assert.Equal(t, "Müller & Söhne", p.Company)
	assert.Equal(t, `Tisch "am Fenster" bitte, Budget < 500€`, p.Message)
}
