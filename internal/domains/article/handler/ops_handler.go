package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/article/model"
	"newsportal-backend/internal/domains/article/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// CONTENT MUTATION OPERATION ENDPOINT
// =====================================================

// ContentMutationHandler serves the action-discriminated article
// mutation endpoint used by the admin console.
type ContentMutationHandler struct {
	articleService service.ServiceInterface
}

func NewContentMutationHandler(articleService service.ServiceInterface) *ContentMutationHandler {
	return &ContentMutationHandler{articleService: articleService}
}

// Handle handles POST /functions/content-mutation.
// The body selects one of: create, publish, feature, delete.
func (h *ContentMutationHandler) Handle(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.ContentMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case model.ActionCreate:
		if req.Data == nil {
			response.BadRequest(c, "data is required for create")
			return
		}
		createReq := model.CreateArticleRequest{
			Title:            req.Data.Title,
			Content:          req.Data.Content,
			Excerpt:          req.Data.Excerpt,
			CategoryID:       req.Data.CategoryID,
			Tags:             req.Data.Tags,
			FeaturedImageURL: req.Data.FeaturedImageURL,
		}
		article, err := h.articleService.Create(ctx, caller, createReq)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		response.Success(c, 201, article)

	case model.ActionPublish:
		articleID, _ := uuid.Parse(req.ArticleID)
		article, err := h.articleService.Publish(ctx, caller, articleID)
		if err != nil {
			h.respondError(c, err, "publish")
			return
		}
		response.Success(c, 200, article)

	case model.ActionFeature:
		articleID, _ := uuid.Parse(req.ArticleID)
		article, err := h.articleService.Feature(ctx, caller, articleID)
		if err != nil {
			h.respondError(c, err, "feature")
			return
		}
		response.Success(c, 200, article)

	case model.ActionDelete:
		articleID, _ := uuid.Parse(req.ArticleID)
		if err := h.articleService.Delete(ctx, caller, articleID); err != nil {
			h.respondError(c, err, "delete")
			return
		}
		response.Success(c, 200, gin.H{"deleted": true})

	default:
		// Validate already rejects unknown actions; this is unreachable
		// unless the action list and the switch drift apart.
		articleErr := model.NewInvalidActionError(req.Action)
		response.ErrorResponse(c, 400, articleErr.Code, articleErr.Message)
	}
}

func (h *ContentMutationHandler) respondError(c *gin.Context, err error, action string) {
	status, code, message := mapArticleError(err)
	if status == 500 {
		logger.Error("content mutation failed: "+action, err)
	}
	response.ErrorResponse(c, status, code, message)
}
