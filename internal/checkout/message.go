package checkout

import "strings"

// Placeholders recognised in the prefill template.
const (
	TokenOrder   = "{ORDER}"
	TokenName    = "{NAME}"
	TokenAddress = "{ADDRESS}"
	TokenPhone   = "{PHONE}"
	TokenNotes   = "{NOTES}"

	// DefaultTemplate is used when the settings carry no template.
	DefaultTemplate = TokenOrder

	blank = "-"
)

// Form holds the optional buyer details typed into the cart drawer.
type Form struct {
	Name    string
	Address string
	Phone   string
	Notes   string
}

// Normalize trims every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Address: strings.TrimSpace(f.Address),
		Phone:   strings.TrimSpace(f.Phone),
		Notes:   strings.TrimSpace(f.Notes),
	}
}

// FillTemplate substitutes the first occurrence of each placeholder. Blank form fields
// become "-". Later occurrences of a placeholder are left untouched.
func FillTemplate(template, order string, form Form) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultTemplate
	}
	form = form.Normalize()
	out := strings.Replace(template, TokenOrder, order, 1)
	out = strings.Replace(out, TokenName, orBlank(form.Name), 1)
	out = strings.Replace(out, TokenAddress, orBlank(form.Address), 1)
	out = strings.Replace(out, TokenPhone, orBlank(form.Phone), 1)
	out = strings.Replace(out, TokenNotes, orBlank(form.Notes), 1)
	return out
}

// ContactMessage is the text sent from the contact form.
func ContactMessage(brand, name, phone, message string) string {
	var b strings.Builder
	b.WriteString("Hi ")
	b.WriteString(brand)
	b.WriteString("!\n\nName: ")
	b.WriteString(strings.TrimSpace(name))
	b.WriteString("\nPhone: ")
	b.WriteString(orBlank(strings.TrimSpace(phone)))
	b.WriteString("\nMessage: ")
	b.WriteString(strings.TrimSpace(message))
	return b.String()
}

// CustomOrderMessage is the prefilled brief for a custom order chat.
func CustomOrderMessage(brand string) string {
	return "Hi " + brand + "! I want a custom order. Here is my idea:\n\n" +
		"- Item(s):\n- Quantity:\n- Colors/Theme:\n- Delivery date:"
}

func orBlank(v string) string {
	if v == "" {
		return blank
	}
	return v
}
