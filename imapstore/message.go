// SPDX-License-Identifier: GPL-3.0-or-later
package imapstore

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-message/mail"
)

// outgoing accumulates an outbound message and appends it to the outbox
// mailbox on Send. Actual SMTP delivery is the job of whatever drains the
// outbox.
type outgoing struct {
	store *Store

	to, cc, bcc   string
	subject, body string
}

var _ domain.OutgoingMessage = (*outgoing)(nil)

func (o *outgoing) SetTo(to string) {
	o.to = to
}

func (o *outgoing) SetCC(cc string) {
	o.cc = cc
}

func (o *outgoing) SetBCC(bcc string) {
	o.bcc = bcc
}

func (o *outgoing) SetSubject(subject string) {
	o.subject = subject
}

func (o *outgoing) SetBody(body string) {
	o.body = body
}

func (o *outgoing) Subject() string {
	return o.subject
}

func (o *outgoing) Body() string {
	return o.body
}

func (o *outgoing) Send() error {
	if strings.TrimSpace(o.to) == "" {
		return fmt.Errorf("%w: recipient must not be empty", domain.ErrValidation)
	}

	var header mail.Header
	header.SetDate(time.Now())
	header.SetSubject(o.subject)
	header.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	header.SetAddressList("From", []*mail.Address{{Address: o.store.user}})
	header.SetAddressList("To", splitAddresses(o.to))
	if strings.TrimSpace(o.cc) != "" {
		header.SetAddressList("Cc", splitAddresses(o.cc))
	}
	if strings.TrimSpace(o.bcc) != "" {
		header.SetAddressList("Bcc", splitAddresses(o.bcc))
	}

	var buf bytes.Buffer
	writer, err := mail.CreateSingleInlineWriter(&buf, header)
	if err != nil {
		return fmt.Errorf("could not create message writer: %w", err)
	}

	_, err = writer.Write([]byte(o.body))
	if err != nil {
		return fmt.Errorf("could not write message body: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("could not finish message: %w", err)
	}

	outbox, err := o.store.DefaultFolder(domain.FolderOutbox)
	if err != nil {
		return err
	}

	mailbox := outbox.Name()
	if folder, ok := outbox.(*imapFolder); ok {
		mailbox = folder.fullName
	}

	err = o.store.appendMessage(mailbox, buf.Bytes())
	if err != nil {
		return err
	}

	o.store.l.WithField("to", o.to).Info("Queued outgoing message")
	return nil
}

func (s *Store) appendMessage(mailbox string, body []byte) error {
	err := s.connection.Append(mailbox, []string{imap.SeenFlag}, time.Now(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not append to %s: %w", mailbox, err)
	}

	return nil
}

func splitAddresses(list string) []*mail.Address {
	addresses := []*mail.Address{}
	for _, address := range strings.Split(list, ",") {
		address = strings.TrimSpace(address)
		if len(address) > 0 {
			addresses = append(addresses, &mail.Address{Address: address})
		}
	}

	return addresses
}
