package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contractiq/internal/contract"
	"contractiq/internal/domain"
	"contractiq/internal/handler"
	"contractiq/internal/middleware"
	"contractiq/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setAuthContext(c *gin.Context, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
}

func newTemplateHandler() (*handler.TemplateHandler, *mocks.MockTemplateService) {
	mockSvc := new(mocks.MockTemplateService)
	h := handler.NewTemplateHandler(mockSvc)
	return h, mockSvc
}

func TestTemplateHandler_List(t *testing.T) {
	h, mockSvc := newTemplateHandler()

	mockSvc.On("ListTemplates").Return([]contract.TemplateName{
		contract.TemplateServiceAgreement,
		contract.TemplateEmploymentAgreement,
		contract.TemplateNDA,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/templates", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Len(t, data["templates"], 3)
}

func TestTemplateHandler_Compatible(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()

	mockSvc.On("CompatibleTemplates", mock.Anything, contractID).
		Return(contract.TypeServiceAgreement, []contract.TemplateName{contract.TemplateServiceAgreement}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/contracts/"+contractID.String()+"/templates", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}}

	h.Compatible(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Service Agreement", data["contract_type"])
	assert.Equal(t, true, data["supported"])
}

func TestTemplateHandler_Compatible_UnsupportedType(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()

	mockSvc.On("CompatibleTemplates", mock.Anything, contractID).
		Return(contract.TypeOther, []contract.TemplateName{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/contracts/"+contractID.String()+"/templates", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}}

	h.Compatible(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["supported"])
}

func TestTemplateHandler_Compatible_InvalidID(t *testing.T) {
	h, mockSvc := newTemplateHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/contracts/not-a-uuid/templates", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Compatible(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "CompatibleTemplates", mock.Anything, mock.Anything)
}

func TestTemplateHandler_Populate_Success(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()
	userID := uuid.New()

	mockSvc.On("Populate", mock.Anything, contractID, userID, contract.TemplateNDA).
		Return("NON-DISCLOSURE AGREEMENT (NDA)\n...", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/contracts/"+contractID.String()+"/templates/NDA/populate", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}, {Key: "name", Value: "NDA"}}
	setAuthContext(c, userID, "member")

	h.Populate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "NDA", data["template"])
	assert.Contains(t, data["content"], "NON-DISCLOSURE AGREEMENT")
	mockSvc.AssertExpectations(t)
}

func TestTemplateHandler_Populate_Incompatible(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()
	userID := uuid.New()

	mockSvc.On("Populate", mock.Anything, contractID, userID, contract.TemplateServiceAgreement).
		Return("", domain.ErrTemplateIncompatible)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/contracts/"+contractID.String()+"/templates/Service Agreement/populate", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}, {Key: "name", Value: "Service Agreement"}}
	setAuthContext(c, userID, "member")

	h.Populate(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "TEMPLATE_INCOMPATIBLE", resp.Error.Code)
}

func TestTemplateHandler_Populate_UnknownTemplate(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()
	userID := uuid.New()

	mockSvc.On("Populate", mock.Anything, contractID, userID, contract.TemplateName("Partnership Deed")).
		Return("", domain.ErrUnknownTemplate)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/contracts/"+contractID.String()+"/templates/Partnership Deed/populate", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}, {Key: "name", Value: "Partnership Deed"}}
	setAuthContext(c, userID, "member")

	h.Populate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplateHandler_Populate_MissingAuth(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/contracts/"+contractID.String()+"/templates/NDA/populate", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}, {Key: "name", Value: "NDA"}}

	h.Populate(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "Populate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTemplateHandler_Document_Success(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()
	userID := uuid.New()

	doc := []byte{'P', 'K', 0x03, 0x04}
	mockSvc.On("RenderDocx", mock.Anything, contractID, userID, contract.TemplateNDA).Return(doc, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/contracts/"+contractID.String()+"/templates/NDA/document", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}, {Key: "name", Value: "NDA"}}
	setAuthContext(c, userID, "member")

	h.Document(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, doc, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Type"), "wordprocessingml.document")
}

func TestTemplateHandler_Document_NoAnalysis(t *testing.T) {
	h, mockSvc := newTemplateHandler()
	contractID := uuid.New()
	userID := uuid.New()

	mockSvc.On("RenderDocx", mock.Anything, contractID, userID, contract.TemplateNDA).
		Return(nil, domain.ErrAnalysisNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/contracts/"+contractID.String()+"/templates/NDA/document", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: contractID.String()}, {Key: "name", Value: "NDA"}}
	setAuthContext(c, userID, "member")

	h.Document(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
