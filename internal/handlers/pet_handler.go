package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httpresp"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/middleware"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/storage"
)

type PetHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewPetHandler(db *gorm.DB, uploader *storage.Uploader) *PetHandler {
	return &PetHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreatePetRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Breed    string `json:"breed"`
	Size     string `json:"size"`
	Notes    string `json:"notes"`
}

// --------- Handlers ---------

func (h *PetHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	clientID := c.Query("client_id")

	q := h.db.
		Joins("JOIN clients ON clients.id = pets.client_id").
		Where("clients.salon_id = ?", salonID)

	if clientID != "" {
		q = q.Where("pets.client_id = ?", clientID)
	}

	var pets []models.Pet
	if err := q.Order("pets.name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Erro ao listar pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// cliente precisa pertencer ao salão do token
	var client models.Client
	if err := h.db.
		Where("id = ? AND salon_id = ?", req.ClientID, salonID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	pet := models.Pet{
		ClientID: client.ID,
		Name:     req.Name,
		Breed:    req.Breed,
		Size:     req.Size,
		Notes:    req.Notes,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Erro ao criar pet.")
		return
	}

	httpresp.Created(c, pet)
}

// UploadPhoto recebe multipart "photo", normaliza (redimensiona + webp) e
// grava no bucket. A URL resultante fica no cadastro do pet.
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	id := c.Param("id")

	if h.uploader == nil {
		httperr.Internal(c, "photo_storage_disabled", "Armazenamento de fotos não configurado.")
		return
	}

	var pet models.Pet
	if err := h.db.
		Joins("JOIN clients ON clients.id = pets.client_id").
		Where("pets.id = ? AND clients.salon_id = ?", id, salonID).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto.")
		return
	}
	defer src.Close()

	normalized, err := storage.NormalizePhoto(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Foto inválida (esperado JPEG ou PNG).")
		return
	}

	url, err := h.uploader.UploadPetPhoto(c.Request.Context(), pet.ID, normalized)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	pet.PhotoURL = url
	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_save_pet", "Erro ao salvar o pet.")
		return
	}

	c.JSON(http.StatusOK, pet)
}
