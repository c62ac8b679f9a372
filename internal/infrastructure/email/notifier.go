package email

import (
	"fmt"
	"html"
	"strings"

	sharedConfig "reinkjet/internal/shared/config"
	"reinkjet/internal/shared/logger"
	"reinkjet/internal/shared/services/markdown"
)

// Template keys accepted by Notify.
const (
	TemplateTicketCreated = "ticket_created"
	TemplateQuoteRequest  = "quote_request"
	TemplateContactForm   = "contact_form"
	TemplateTest          = "test"
)

// Notifier builds notification emails from template fields and routes
// them to the destination mailbox for their category. Notify never
// returns an error; delivery failures are logged and reported as false.
type Notifier struct {
	sender Sender
	cfg    sharedConfig.EmailConfig
	md     markdown.MarkdownService
	logger logger.Interface
}

func NewNotifier(sender Sender, cfg sharedConfig.EmailConfig, md markdown.MarkdownService, logger logger.Interface) *Notifier {
	return &Notifier{
		sender: sender,
		cfg:    cfg,
		md:     md,
		logger: logger,
	}
}

func (n *Notifier) Notify(templateKey string, fields map[string]string) bool {
	to, subject, htmlBody, plainBody, err := n.build(templateKey, fields)
	if err != nil {
		n.logger.Errorw("failed to build notification email", "template", templateKey, "error", err)
		return false
	}

	if err := n.sender.Send(to, subject, htmlBody, plainBody); err != nil {
		n.logger.Errorw("failed to deliver notification email", "template", templateKey, "to", to, "error", err)
		return false
	}

	n.logger.Infow("notification email sent", "template", templateKey, "to", to)
	return true
}

func (n *Notifier) build(templateKey string, fields map[string]string) (to, subject, htmlBody, plainBody string, err error) {
	get := func(key string) string { return fields[key] }

	switch templateKey {
	case TemplateTicketCreated:
		to = n.cfg.DestinationFor("maintenance")
		subject = fmt.Sprintf("Novo chamado #%s - %s", get("ticket_id"), get("equipment_serial"))
		description, mdErr := n.md.ToHTMLSanitized(get("description"))
		if mdErr != nil {
			return "", "", "", "", mdErr
		}
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>Novo chamado aberto</h2>
				<p><strong>Chamado:</strong> #%s</p>
				<p><strong>Cliente:</strong> %s (%s)</p>
				<p><strong>Equipamento:</strong> %s - %s</p>
				<p><strong>Tipo de problema:</strong> %s</p>
				<p><strong>Prioridade:</strong> %s</p>
				<h3>Descrição</h3>
				%s
			</body>
			</html>
		`,
			html.EscapeString(get("ticket_id")),
			html.EscapeString(get("account_name")),
			html.EscapeString(get("company_name")),
			html.EscapeString(get("equipment_serial")),
			html.EscapeString(get("equipment_model")),
			html.EscapeString(get("problem_type")),
			html.EscapeString(get("priority")),
			description,
		)
		plainBody = fmt.Sprintf(
			"Novo chamado aberto\n\nChamado: #%s\nCliente: %s (%s)\nEquipamento: %s - %s\nTipo de problema: %s\nPrioridade: %s\n\nDescrição:\n%s\n",
			get("ticket_id"), get("account_name"), get("company_name"),
			get("equipment_serial"), get("equipment_model"),
			get("problem_type"), get("priority"), get("description"),
		)

	case TemplateQuoteRequest:
		to = n.cfg.DestinationFor(quoteCategory(get("service_type")))
		subject = fmt.Sprintf("Solicitação de orçamento - %s", get("name"))
		message, mdErr := n.md.ToHTMLSanitized(get("message"))
		if mdErr != nil {
			return "", "", "", "", mdErr
		}
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>Nova solicitação de orçamento</h2>
				<p><strong>Nome:</strong> %s</p>
				<p><strong>E-mail:</strong> %s</p>
				<p><strong>Telefone:</strong> %s</p>
				<p><strong>Empresa:</strong> %s</p>
				<p><strong>Tipo de serviço:</strong> %s</p>
				<h3>Mensagem</h3>
				%s
			</body>
			</html>
		`,
			html.EscapeString(get("name")),
			html.EscapeString(get("email")),
			html.EscapeString(get("phone")),
			html.EscapeString(get("company")),
			html.EscapeString(get("service_type")),
			message,
		)
		plainBody = fmt.Sprintf(
			"Nova solicitação de orçamento\n\nNome: %s\nE-mail: %s\nTelefone: %s\nEmpresa: %s\nTipo de serviço: %s\n\nMensagem:\n%s\n",
			get("name"), get("email"), get("phone"), get("company"), get("service_type"), get("message"),
		)

	case TemplateContactForm:
		to = n.cfg.DestinationFor("general")
		subject = fmt.Sprintf("Contato pelo site - %s", get("name"))
		message, mdErr := n.md.ToHTMLSanitized(get("message"))
		if mdErr != nil {
			return "", "", "", "", mdErr
		}
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>Nova mensagem de contato</h2>
				<p><strong>Nome:</strong> %s</p>
				<p><strong>E-mail:</strong> %s</p>
				<p><strong>Telefone:</strong> %s</p>
				<p><strong>Assunto:</strong> %s</p>
				<h3>Mensagem</h3>
				%s
			</body>
			</html>
		`,
			html.EscapeString(get("name")),
			html.EscapeString(get("email")),
			html.EscapeString(get("phone")),
			html.EscapeString(get("subject")),
			message,
		)
		plainBody = fmt.Sprintf(
			"Nova mensagem de contato\n\nNome: %s\nE-mail: %s\nTelefone: %s\nAssunto: %s\n\nMensagem:\n%s\n",
			get("name"), get("email"), get("phone"), get("subject"), get("message"),
		)

	case TemplateTest:
		to = n.cfg.DestinationFor("general")
		subject = "E-mail de teste"
		htmlBody = `
			<html>
			<body>
				<h2>E-mail de teste</h2>
				<p>A configuração de e-mail está funcionando corretamente.</p>
			</body>
			</html>
		`
		plainBody = "E-mail de teste\n\nA configuração de e-mail está funcionando corretamente.\n"

	default:
		return "", "", "", "", fmt.Errorf("unknown template key: %s", templateKey)
	}

	if to == "" {
		return "", "", "", "", fmt.Errorf("no destination configured for template %s", templateKey)
	}

	return to, subject, htmlBody, plainBody, nil
}

// quoteCategory routes a quote request to a mailbox by keywords in the
// requested service type.
func quoteCategory(serviceType string) string {
	s := strings.ToLower(serviceType)
	switch {
	case strings.Contains(s, "manuten"):
		return "maintenance"
	case strings.Contains(s, "locac") || strings.Contains(s, "locaç") || strings.Contains(s, "alug"):
		return "rental"
	case strings.Contains(s, "suprimento") || strings.Contains(s, "toner") || strings.Contains(s, "cartucho"):
		return "supplies"
	default:
		return "general"
	}
}
