package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
)

var (
	pendingAccountTmpl = template.Must(template.New("pending").Parse(`
<h1>Nouvelle inscription à valider</h1>
<ul>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Entreprise:</strong> {{or .CompanyName "-"}}</li>
  <li><strong>KBIS:</strong> {{or .KbisFileURL "-"}}</li>
  <li><strong>Douanes:</strong> {{or .CustomsFileURL "-"}}</li>
</ul>
<p>Veuillez vous <a href="{{.AppURL}}/login">connecter en tant qu'administrateur</a> pour accepter ou rejeter ce compte.</p>
`))

	registrationAckTmpl = template.Must(template.New("ack").Parse(`
<h1>Inscription reçue</h1>
<p>Bonjour {{.Name}},</p>
<p>Nous avons bien reçu votre demande d'ouverture de compte pour <strong>{{.CompanyName}}</strong>.</p>
<p>Nos équipes vérifient vos documents. Vous recevrez un email dès que votre compte sera activé.</p>
<p>Cordialement,<br/>L'équipe Le Creuset</p>
`))

	welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h1>Bienvenue chez Le Creuset</h1>
<p>Bonjour {{.Name}},</p>
<p>Votre compte a été validé. Vous pouvez dès à présent <a href="{{.AppURL}}/login">vous connecter</a> pour suivre vos commandes et vos comptes poids.</p>
<p>Cordialement,<br/>L'équipe Le Creuset</p>
`))

	orderCompletedTmpl = template.Must(template.New("completed").Parse(`
<h1>Commande terminée</h1>
<p>Bonjour,</p>
<p>Votre commande <strong>{{.OrderRef}}</strong> est terminée et expédiée.</p>
<ul>
  <li><strong>Facture:</strong> {{.InvoiceNumber}}</li>
  {{if .Amount}}<li><strong>Montant:</strong> {{.Amount}} €</li>{{end}}
</ul>
<p>Retrouvez votre facture dans votre <a href="{{.AppURL}}/invoices">espace client</a>.</p>
<p>Cordialement,<br/>L'équipe Le Creuset</p>
`))
)

// PendingAccount is the data of the administrator notice for a new
// registration.
type PendingAccount struct {
	Email          string
	CompanyName    string
	KbisFileURL    string
	CustomsFileURL string
	AppURL         string
}

// PendingAccountMessage tells administrators a registration awaits review.
func PendingAccountMessage(adminEmail string, d PendingAccount) Message {
	who := d.CompanyName
	if who == "" {
		who = d.Email
	}
	return Message{
		To:      []string{adminEmail},
		Subject: "Validation requise - Nouveau compte : " + who,
		HTML:    render(pendingAccountTmpl, d),
		Text:    fmt.Sprintf("Nouvelle inscription à valider\n\nEmail: %s\nEntreprise: %s", d.Email, who),
	}
}

// RegistrationAckMessage confirms receipt of a registration to the registrant.
func RegistrationAckMessage(to, name, company string) Message {
	return Message{
		To:      []string{to},
		Subject: "Votre inscription a bien été reçue",
		HTML:    render(registrationAckTmpl, map[string]string{"Name": name, "CompanyName": company}),
		Text:    "Nous avons bien reçu votre demande d'ouverture de compte. Vous serez notifié dès son activation.",
	}
}

// WelcomeMessage announces an activated account.
func WelcomeMessage(to, name, appURL string) Message {
	return Message{
		To:      []string{to},
		Subject: "Votre compte Le Creuset est activé",
		HTML:    render(welcomeTmpl, map[string]string{"Name": name, "AppURL": appURL}),
		Text:    "Votre compte a été validé. Connectez-vous sur " + appURL + "/login",
	}
}

// OrderCompletedMessage announces a closed order and its invoice.
func OrderCompletedMessage(to, orderRef, invoiceNumber string, amount *decimal.Decimal, appURL string) Message {
	data := map[string]string{
		"OrderRef":      orderRef,
		"InvoiceNumber": invoiceNumber,
		"AppURL":        appURL,
	}
	text := fmt.Sprintf("Votre commande %s est terminée. Facture: %s", orderRef, invoiceNumber)
	if amount != nil {
		data["Amount"] = amount.StringFixed(2)
		text += fmt.Sprintf(" (%s €)", data["Amount"])
	}
	return Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Commande %s terminée - Facture %s", orderRef, invoiceNumber),
		HTML:    render(orderCompletedTmpl, data),
		Text:    text,
	}
}

// TestMessage is the connectivity check sent by administrators.
func TestMessage(to string) Message {
	return Message{
		To:      []string{to},
		Subject: "Test d'envoi - Le Creuset",
		HTML:    "<p>Ceci est un email de <strong>test</strong>.</p>",
		Text:    "Ceci est un email de test.",
	}
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
