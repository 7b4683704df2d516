package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litrevu/internal/application/ticket/usecases"
	"litrevu/internal/interfaces/http/handlers/testutil"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/services/markdown"
)

type ticketHandlerFixture struct {
	handler    *TicketHandler
	userRepo   *fakeUserRepo
	ticketRepo *fakeTicketRepo
	reviewRepo *fakeReviewRepo
	imageStore *fakeImageStore
}

func newTicketHandlerFixture() *ticketHandlerFixture {
	log := testutil.NewMockLogger()
	userRepo := newFakeUserRepo()
	ticketRepo := newFakeTicketRepo()
	reviewRepo := newFakeReviewRepo(ticketRepo)
	imageStore := newFakeImageStore()

	createUC := usecases.NewCreateTicketUseCase(ticketRepo, imageStore, log)
	getUC := usecases.NewGetTicketUseCase(ticketRepo, reviewRepo, userRepo, log)
	updateUC := usecases.NewUpdateTicketUseCase(ticketRepo, imageStore, log)
	deleteUC := usecases.NewDeleteTicketUseCase(ticketRepo, reviewRepo, imageStore, &fakeTxManager{}, log)

	dto := NewDTOBuilder(markdown.NewService(), "/media")
	mediaConfig := config.MediaConfig{Root: "media", URLPrefix: "/media", MaxUploadBytes: 1 << 20}

	return &ticketHandlerFixture{
		handler:    NewTicketHandler(createUC, getUC, updateUC, deleteUC, dto, mediaConfig, log),
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		imageStore: imageStore,
	}
}

func multipartForm(t *testing.T, fields map[string]string, imageField, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageField != "" {
		part, err := writer.CreateFormFile(imageField, imageName)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func TestTicketHandler_Create_Success(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")

	body, contentType := multipartForm(t, map[string]string{
		"title":       "The Left Hand of Darkness",
		"description": "looking for opinions",
	}, "", "", nil)
	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/add", body, contentType)
	testutil.SetAuthContext(c, 1, "alice")

	fixture.handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data TicketResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "The Left Hand of Darkness", data.Title)
	assert.Empty(t, data.ImageURL)
}

func TestTicketHandler_Create_WithImage(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")

	body, contentType := multipartForm(t, map[string]string{
		"title": "Dune",
	}, "image", "cover.png", []byte("png-bytes"))
	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/add", body, contentType)
	testutil.SetAuthContext(c, 1, "alice")

	fixture.handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, fixture.imageStore.saved, 1)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data TicketResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "/media/tickets/cover.png", data.ImageURL)
}

func TestTicketHandler_Create_MissingTitle(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")

	body, contentType := multipartForm(t, map[string]string{"description": "no title"}, "", "", nil)
	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/add", body, contentType)
	testutil.SetAuthContext(c, 1, "alice")

	fixture.handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_Create_RejectsUnknownImageType(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")

	body, contentType := multipartForm(t, map[string]string{
		"title": "Dune",
	}, "image", "cover.exe", []byte("not-an-image"))
	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/add", body, contentType)
	testutil.SetAuthContext(c, 1, "alice")

	fixture.handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fixture.imageStore.saved)
}

func TestTicketHandler_Create_Unauthenticated(t *testing.T) {
	fixture := newTicketHandlerFixture()

	body, contentType := multipartForm(t, map[string]string{"title": "Dune"}, "", "", nil)
	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/add", body, contentType)

	fixture.handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTicketHandler_Get_Success(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")
	seedUser(fixture.userRepo, 2, "bob")
	seedTicket(fixture.ticketRepo, 10, "Solaris", 1)
	seedReview(fixture.reviewRepo, 5, 10, 2)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/10", nil)
	testutil.SetURLParam(c, "id", "10")

	fixture.handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data struct {
		Ticket TicketResponse  `json:"ticket"`
		Review *ReviewResponse `json:"review"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Solaris", data.Ticket.Title)
	require.NotNil(t, data.Ticket.Owner)
	assert.Equal(t, "alice", data.Ticket.Owner.Username)
	require.NotNil(t, data.Review)
	assert.Equal(t, 4, data.Review.Rating)
	require.NotNil(t, data.Review.Owner)
	assert.Equal(t, "bob", data.Review.Owner.Username)
}

func TestTicketHandler_Get_NotFound(t *testing.T) {
	fixture := newTicketHandlerFixture()

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/99", nil)
	testutil.SetURLParam(c, "id", "99")

	fixture.handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_ReviewContext(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")
	seedUser(fixture.userRepo, 2, "bob")
	seedTicket(fixture.ticketRepo, 10, "Solaris", 1)

	fetch := func(t *testing.T) (ticketTitle string, reviewExists bool) {
		t.Helper()

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/10/review/add", nil)
		testutil.SetAuthContext(c, 2, "bob")
		testutil.SetURLParam(c, "id", "10")

		fixture.handler.ReviewContext(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))

		var data struct {
			Ticket       TicketResponse `json:"ticket"`
			ReviewExists bool           `json:"review_exists"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		return data.Ticket.Title, data.ReviewExists
	}

	title, exists := fetch(t)
	assert.Equal(t, "Solaris", title)
	assert.False(t, exists)

	seedReview(fixture.reviewRepo, 5, 10, 2)

	_, exists = fetch(t)
	assert.True(t, exists)
}

func TestTicketHandler_Update_Forbidden(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")
	seedUser(fixture.userRepo, 2, "bob")
	seedTicket(fixture.ticketRepo, 10, "Solaris", 1)

	body, contentType := multipartForm(t, map[string]string{"title": "Hijacked"}, "", "", nil)
	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/10/update", body, contentType)
	testutil.SetAuthContext(c, 2, "bob")
	testutil.SetURLParam(c, "id", "10")

	fixture.handler.Update(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTicketHandler_Delete_Success(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")
	seedTicket(fixture.ticketRepo, 10, "Solaris", 1)
	seedReview(fixture.reviewRepo, 5, 10, 1)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/10/delete", nil)
	testutil.SetAuthContext(c, 1, "alice")
	testutil.SetURLParam(c, "id", "10")

	fixture.handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, fixture.ticketRepo.tickets)
	assert.Empty(t, fixture.reviewRepo.reviews)
}

func TestTicketHandler_Delete_Forbidden(t *testing.T) {
	fixture := newTicketHandlerFixture()
	seedUser(fixture.userRepo, 1, "alice")
	seedUser(fixture.userRepo, 2, "bob")
	seedTicket(fixture.ticketRepo, 10, "Solaris", 1)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/10/delete", nil)
	testutil.SetAuthContext(c, 2, "bob")
	testutil.SetURLParam(c, "id", "10")

	fixture.handler.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, fixture.ticketRepo.tickets, 1)
}
