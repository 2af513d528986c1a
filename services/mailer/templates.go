package mailer

import (
	"fmt"
	"strings"

	"akplaw/models"
)

// Inquiry type display names used in subject lines.
var inquiryTypeLabels = map[string]string{
	models.InquiryTypeAppointment: "Appointment Request",
	models.InquiryTypeRFP:         "Request for Proposal",
	models.InquiryTypeContact:     "Contact Message",
}

func emailShell(title, body string) string {
	return fmt.Sprintf(`<div style="font-family:Georgia,serif;max-width:600px;margin:0 auto;color:#1a1a2e">
<h2 style="border-bottom:2px solid #c9a227;padding-bottom:8px">%s</h2>
%s
<p style="margin-top:32px;font-size:12px;color:#777">AKP Law &mdash; Advocates &amp; Legal Consultants</p>
</div>`, title, body)
}

// InquiryAcknowledgementEmail confirms receipt of an inquiry to the client,
// quoting the public reference number.
func InquiryAcknowledgementEmail(inq *models.Inquiry) models.EmailMessage {
	label := inquiryTypeLabels[inq.Type]
	body := fmt.Sprintf(`<p>Dear %s,</p>
<p>Thank you for reaching out to AKP Law. We have received your %s and a member
of our team will be in touch shortly.</p>
<p>Your reference number is <strong>%s</strong>. Please quote it in any
follow-up correspondence.</p>`, inq.Name, strings.ToLower(label), inq.Reference)

	return models.EmailMessage{
		To:      []string{inq.Email},
		Subject: fmt.Sprintf("We received your %s (%s)", strings.ToLower(label), inq.Reference),
		HTML:    emailShell("Thank you for contacting AKP Law", body),
	}
}

// AdminInquiryAlertEmail notifies the back office of a new inquiry, including
// the AI triage label when one was assigned.
func AdminInquiryAlertEmail(inq *models.Inquiry, adminEmail string) models.EmailMessage {
	label := inquiryTypeLabels[inq.Type]
	triage := "unclassified"
	if inq.Classification != nil {
		triage = fmt.Sprintf("%s / %s urgency", inq.Classification.PracticeArea, inq.Classification.Urgency)
	}
	body := fmt.Sprintf(`<p>A new %s has arrived.</p>
<ul>
<li>Reference: <strong>%s</strong></li>
<li>From: %s &lt;%s&gt;</li>
<li>Triage: %s</li>
</ul>
<p>Review it in the admin dashboard.</p>`, strings.ToLower(label), inq.Reference, inq.Name, inq.Email, triage)

	return models.EmailMessage{
		To:      []string{adminEmail},
		Subject: fmt.Sprintf("New %s: %s", strings.ToLower(label), inq.Reference),
		HTML:    emailShell("New inquiry received", body),
		ReplyTo: inq.Email,
	}
}

// ApplicationConfirmationEmail confirms a job application to the applicant.
func ApplicationConfirmationEmail(app *models.JobApplication, job *models.Job) models.EmailMessage {
	body := fmt.Sprintf(`<p>Dear %s,</p>
<p>Your application for the position of <strong>%s</strong> (%s, %s) has been
received. Our recruitment team reviews every application and will contact you
if your profile is shortlisted.</p>`, app.Personal.FullName, job.Title, job.Department, job.Location)

	return models.EmailMessage{
		To:      []string{app.Personal.Email},
		Subject: fmt.Sprintf("Application received: %s", job.Title),
		HTML:    emailShell("Application received", body),
	}
}

// InvoiceIssuedEmail notifies a client that a digital invoice was issued.
func InvoiceIssuedEmail(clientEmail string, doc *models.ClientDocument) models.EmailMessage {
	inv := doc.Invoice
	body := fmt.Sprintf(`<p>A new invoice has been issued to your document vault.</p>
<ul>
<li>Invoice number: <strong>%s</strong></li>
<li>Total amount: %s %.2f</li>
<li>Due date: %s</li>
</ul>
<p>Sign in to your client portal to view, download, or settle it.</p>`,
		inv.Number, inv.Currency, inv.TotalAmount, inv.DueDate.Format("2 January 2006"))

	return models.EmailMessage{
		To:      []string{clientEmail},
		Subject: fmt.Sprintf("Invoice %s from AKP Law", inv.Number),
		HTML:    emailShell("New invoice issued", body),
	}
}
