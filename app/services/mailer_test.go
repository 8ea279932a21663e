package services_test

import (
	"net/smtp"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
)

func TestBuildLowStockEmailBody(t *testing.T) {
	c := qt.New(t)

	body := services.BuildLowStockEmailBody([]models.InventoryItem{
		{
			ProductID: "p1", Quantity: 2, MinThreshold: 5, Location: "Entrepôt <Paris>",
			Product: &models.ProductSummary{Name: "Robe d'été", Price: decimal.RequireFromString("45.99")},
		},
	}, "€")

	c.Assert(body, qt.Contains, "1 item(s) at or below their restock threshold")
	c.Assert(body, qt.Contains, "Robe d&#39;été")
	c.Assert(body, qt.Contains, "Entrepôt &lt;Paris&gt;")
	c.Assert(body, qt.Contains, "€91.98")
	c.Assert(body, qt.Contains, `<td style="text-align:right">4</td>`)
}

func TestSendHTMLEmail(t *testing.T) {
	c := qt.New(t)

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	mailer := services.NewMailer(configs.SMTPConfig{Host: "smtp.test", Port: "2525", From: "stock@shop.test"}).
		WithSender(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			c.Check(a, qt.IsNil)
			return nil
		})

	c.Assert(mailer.SendHTMLEmail("ops@shop.test", "Low stock", "<p>hi</p>"), qt.IsNil)
	c.Assert(gotAddr, qt.Equals, "smtp.test:2525")
	c.Assert(gotTo, qt.DeepEquals, []string{"ops@shop.test"})
	c.Assert(strings.HasPrefix(gotMsg, "From: stock@shop.test\r\nTo: ops@shop.test\r\nSubject: Low stock\r\n"), qt.IsTrue)
	c.Assert(strings.HasSuffix(gotMsg, "\r\n\r\n<p>hi</p>"), qt.IsTrue)

	err := services.NewMailer(configs.SMTPConfig{}).SendHTMLEmail("ops@shop.test", "x", "y")
	c.Assert(err, qt.ErrorMatches, "smtp is not configured")
}
