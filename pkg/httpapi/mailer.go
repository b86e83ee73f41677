package httpapi

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// EmailRequest is the bulk email action applied to selected rows.
type EmailRequest struct {
	IDs     []int  `json:"ids"`
	Subject string `json:"subject"`
	Content string `json:"content"`
	Module  string `json:"module"`
}

// Mailer posts bulk emails for the selected rows of a resource table.
type Mailer struct {
	client *Client
}

func NewMailer(client *Client) *Mailer {
	return &Mailer{client: client}
}

func (m *Mailer) Send(ctx context.Context, req EmailRequest) error {
	if len(req.IDs) == 0 {
		return errors.New("httpapi: no recipients selected")
	}
	return m.client.sendJSON(ctx, http.MethodPost, "email", req, nil)
}
