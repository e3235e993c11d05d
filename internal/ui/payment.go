package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barohub/barohub/internal/payment"
)

// startPurchase opens the payment sheet for the course in the detail sheet.
// The detail selection stays underneath it.
func (m *Model) startPurchase() {
	course, ok := m.detailCourse()
	if !ok {
		return
	}
	m.session = payment.Begin(course)
	m.sessionGen++
	m.gatewayRow = 0
	m.overlay = OverlayPayment
}

// clearSession drops the payment session and invalidates pending timers.
func (m *Model) clearSession() {
	if m.session == nil {
		return
	}
	m.session = nil
	m.sessionGen++
}

// finishPurchase ends a successful checkout: session cleared, detail sheet
// closed, back to the base tab.
func (m *Model) finishPurchase() {
	m.clearSession()
	m.detailID = ""
	m.overlay = OverlayNone
}

// handlePaymentKey processes keys on the payment sheet, by phase.
func (m Model) handlePaymentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		m.overlay = OverlayDetail
		return m, nil
	}

	switch m.session.Phase {
	case payment.Idle:
		switch msg.String() {
		case "esc":
			m.clearSession()
			m.overlay = OverlayDetail
			return m, nil
		case "j", "down":
			if m.gatewayRow < len(payment.Gateways)-1 {
				m.gatewayRow++
			}
			return m, nil
		case "k", "up":
			if m.gatewayRow > 0 {
				m.gatewayRow--
			}
			return m, nil
		case "enter":
			return m.chooseGateway(payment.Gateways[m.gatewayRow].ID)
		case "1", "2":
			idx := int(msg.String()[0] - '1')
			return m.chooseGateway(payment.Gateways[idx].ID)
		}
		return m, nil

	case payment.Processing:
		// Cancel is blocked mid-flight; the simulation runs to completion.
		if msg.String() == "esc" {
			return m, m.setNotice("Fadlan ha xidhin barnaamijka")
		}
		return m, nil

	case payment.Success:
		if msg.String() == "esc" || msg.String() == "enter" {
			m.finishPurchase()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) chooseGateway(id string) (tea.Model, tea.Cmd) {
	if err := m.session.Choose(id); err != nil {
		m.logger.Warn("gateway selection rejected", "gateway", id, "error", err)
		return m, nil
	}
	m.logger.Info("payment started",
		"course", m.session.Course.ID,
		"gateway", m.session.Gateway.ID,
		"ref", m.session.Reference)
	return m, paymentProcessedCmd(m.sessionGen)
}

// handlePaymentProcessed advances Processing -> Success when the delay
// elapses. Ticks from a cleared session carry a stale generation and are
// dropped.
func (m Model) handlePaymentProcessed(msg paymentProcessedMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || msg.gen != m.sessionGen || m.session.Phase != payment.Processing {
		return m, nil
	}
	if err := m.session.Complete(); err != nil {
		return m, nil
	}
	m.logger.Info("payment succeeded", "ref", m.session.Reference)
	return m, paymentDoneCmd(m.sessionGen)
}

// handlePaymentDone auto-clears the session after the success hold.
func (m Model) handlePaymentDone(msg paymentDoneMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || msg.gen != m.sessionGen || m.session.Phase != payment.Success {
		return m, nil
	}
	m.finishPurchase()
	return m, nil
}

// renderPayment renders the payment sheet for the current phase.
func (m Model) renderPayment() string {
	styles := m.theme.Styles()
	if m.session == nil {
		return ""
	}

	var b strings.Builder
	switch m.session.Phase {
	case payment.Idle:
		b.WriteString(styles.Text.Bold(true).Render("Lacag Bixinta"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Koorsada: " + truncate(m.session.Course.Title, 42)))
		b.WriteString("\n")
		b.WriteString(styles.Price.Render("$" + formatPrice(m.session.Course.Price)))
		b.WriteString("\n\n")
		for i, gw := range payment.Gateways {
			line := fmt.Sprintf("%d. %s  (%s)", i+1, gw.Name, gw.Network)
			if i == m.gatewayRow {
				b.WriteString(styles.Selected.Render(" " + line + " "))
			} else {
				b.WriteString(styles.Text.Render("  " + line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("BaroHub Platform Secure Checkout  •  enter Select  •  esc Back"))

	case payment.Processing:
		b.WriteString(styles.Warning.Render("Waa la farsameynayaa..."))
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("Fadlan ha xidhin barnaamijka"))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(m.session.Gateway.Name + " • " + m.session.Reference))

	case payment.Success:
		b.WriteString(styles.Success.Render("Waa lagu guuleystay!"))
		b.WriteString("\n\n")
		b.WriteString(styles.Text.Render("Koorsadii si guul leh ayaad u iibsatay."))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Ref: " + m.session.Reference))
	}

	sheet := styles.Sheet.Width(min(m.width-4, 60)).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sheet)
}
