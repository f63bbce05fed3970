package invoice_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/internal/testutils"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	e2e "github.com/benaja-bendo/Le-creuset-backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InvoiceTestSuite struct {
	e2e.E2ETestSuite
	client      *model.User
	order       *model.Order
	clientToken string
	adminToken  string
}

func (s *InvoiceTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.client = s.CreateUser("client@example.com")
	s.order = testutils.CreateOrder(s.T(), s.DB, s.client.ID, "FINISHING")
	s.clientToken = s.LoginUser(s.client)
	s.adminToken = s.LoginUser(s.CreateAdmin())
}

func (s *InvoiceTestSuite) createInvoice(number string) dto.InvoiceRead {
	body := fmt.Sprintf(`{"invoiceNumber":%q,"orderId":%q,"userId":%q,
		"fileUrl":"/api/storage/file/%s.pdf","amount":"99.5","issueDate":"2024-03-01T00:00:00Z"}`,
		number, s.order.ID, s.client.ID, number)
	resp := s.MakeRequest(http.MethodPost, "/api/invoices", body, s.adminToken)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var inv dto.InvoiceRead
	s.Decode(resp, &inv)
	return inv
}

func (s *InvoiceTestSuite) TestCreateAndGet() {
	inv := s.createInvoice("F-001")
	s.Equal("F-001", inv.InvoiceNumber)
	s.Equal(2024, inv.IssueDate.Year())

	resp := s.MakeRequest(http.MethodGet, "/api/invoices/"+inv.ID.String(), "", s.adminToken)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var got dto.InvoiceRead
	s.Decode(resp, &got)
	s.Equal(inv.ID, got.ID)
}

func (s *InvoiceTestSuite) TestCreate_Invalid() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{"missing order", fmt.Sprintf(`{"invoiceNumber":"F","userId":%q,"fileUrl":"/api/f.pdf"}`, s.client.ID), fiber.StatusBadRequest},
		{"unknown order", fmt.Sprintf(`{"invoiceNumber":"F","orderId":%q,"userId":%q,"fileUrl":"/api/f.pdf"}`, uuid.New(), s.client.ID), fiber.StatusNotFound},
		{"unknown user", fmt.Sprintf(`{"invoiceNumber":"F","orderId":%q,"userId":%q,"fileUrl":"/api/f.pdf"}`, s.order.ID, uuid.New()), fiber.StatusNotFound},
		{"negative amount", fmt.Sprintf(`{"invoiceNumber":"F","orderId":%q,"userId":%q,"fileUrl":"/api/f.pdf","amount":-1}`, s.order.ID, s.client.ID), fiber.StatusBadRequest},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/api/invoices", tc.body, s.adminToken)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *InvoiceTestSuite) TestClientViews() {
	s.createInvoice("F-001")
	s.createInvoice("F-002")

	resp := s.MakeRequest(http.MethodGet, "/api/invoices/me", "", s.clientToken)
	var mine []dto.InvoiceRead
	s.Decode(resp, &mine)
	s.Len(mine, 2)

	resp = s.MakeRequest(http.MethodGet, "/api/invoices/order/"+s.order.ID.String(), "", s.clientToken)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var byOrder []dto.InvoiceRead
	s.Decode(resp, &byOrder)
	s.Len(byOrder, 2)

	other := s.LoginUser(s.CreateUser("other@example.com"))
	resp = s.MakeRequest(http.MethodGet, "/api/invoices/order/"+s.order.ID.String(), "", other)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/invoices", "", s.clientToken)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *InvoiceTestSuite) TestAdminListings() {
	s.createInvoice("F-001")

	resp := s.MakeRequest(http.MethodGet, "/api/invoices", "", s.adminToken)
	var all []dto.InvoiceRead
	s.Decode(resp, &all)
	s.Require().Len(all, 1)

	resp = s.MakeRequest(http.MethodGet, "/api/invoices/user/"+s.client.ID.String(), "", s.adminToken)
	var byUser []dto.InvoiceRead
	s.Decode(resp, &byUser)
	s.Len(byUser, 1)

	resp = s.MakeRequest(http.MethodGet, "/api/invoices/user/"+uuid.NewString(), "", s.adminToken)
	var none []dto.InvoiceRead
	s.Decode(resp, &none)
	s.Empty(none)
}

func (s *InvoiceTestSuite) TestDelete() {
	inv := s.createInvoice("F-001")
	path := "/api/invoices/" + inv.ID.String()

	resp := s.MakeRequest(http.MethodDelete, path, "", s.clientToken)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, path, "", s.adminToken)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, path, "", s.adminToken)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceTestSuite))
}
