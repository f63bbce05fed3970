package mold_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	e2e "github.com/benaja-bendo/Le-creuset-backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MoldTestSuite struct {
	e2e.E2ETestSuite
	client      *model.User
	clientToken string
	adminToken  string
}

func (s *MoldTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.client = s.CreateUser("client@example.com")
	s.clientToken = s.LoginUser(s.client)
	s.adminToken = s.LoginUser(s.CreateAdmin())
}

func (s *MoldTestSuite) create(reference, name string) *http.Response {
	body := fmt.Sprintf(`{"userId":%q,"reference":%q,"name":%q,"photoUrl":"/api/storage/file/%s.jpg"}`,
		s.client.ID, reference, name, reference)
	return s.MakeRequest(http.MethodPost, "/api/molds", body, s.adminToken)
}

func (s *MoldTestSuite) TestCreateAndList() {
	resp := s.create("M-2", "Signet")
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	var created dto.MoldRead
	s.Decode(resp, &created)
	s.Equal(s.client.ID, created.UserID)

	resp = s.create("M-1", "Alliance")
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/molds/me", "", s.clientToken)
	var mine []dto.MoldRead
	s.Decode(resp, &mine)
	s.Require().Len(mine, 2)
	s.Equal("Alliance", mine[0].Name)
	s.Equal("Signet", mine[1].Name)

	resp = s.MakeRequest(http.MethodGet, "/api/molds/all", "", s.adminToken)
	var all []dto.MoldRead
	s.Decode(resp, &all)
	s.Require().Len(all, 2)
	s.Require().NotNil(all[0].User)
}

func (s *MoldTestSuite) TestCreate_Invalid() {
	testCases := []struct {
		desc       string
		body       string
		token      string
		wantStatus int
	}{
		{"client cannot create", fmt.Sprintf(`{"userId":%q,"reference":"R","name":"N"}`, s.client.ID), s.clientToken, fiber.StatusForbidden},
		{"unknown owner", fmt.Sprintf(`{"userId":%q,"reference":"R","name":"N"}`, uuid.New()), s.adminToken, fiber.StatusNotFound},
		{"missing name", fmt.Sprintf(`{"userId":%q,"reference":"R"}`, s.client.ID), s.adminToken, fiber.StatusBadRequest},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/api/molds", tc.body, tc.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *MoldTestSuite) TestDelete() {
	resp := s.create("M-1", "Alliance")
	var created dto.MoldRead
	s.Decode(resp, &created)

	resp = s.MakeRequest(http.MethodDelete, "/api/molds/"+created.ID.String(), "", s.adminToken)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/api/molds/"+created.ID.String(), "", s.adminToken)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestMoldTestSuite(t *testing.T) {
	suite.Run(t, new(MoldTestSuite))
}
