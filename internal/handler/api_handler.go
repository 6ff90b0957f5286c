package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fesikdev/site/internal/db"
)

// solutionJSON is the public JSON shape of one solution record.
type solutionJSON struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        *string  `json:"image"`
	Price        int      `json:"price"`
	DeliveryDays int      `json:"delivery_days"`
	Tags         []string `json:"tags"`
	Category     string   `json:"category"`
}

// GetSolutions returns the ordered public solutions listing.
func (a *API) GetSolutions(c *gin.Context) {
	items, err := a.solutions.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Не удалось загрузить решения")
		return
	}

	payload := make([]solutionJSON, 0, len(items))
	for _, item := range items {
		payload = append(payload, a.solutionToJSON(item))
	}

	c.JSON(http.StatusOK, payload)
}

func (a *API) solutionToJSON(item db.Solution) solutionJSON {
	out := solutionJSON{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		DeliveryDays: item.DeliveryDays,
		Tags:         solutionTags(item),
		Category:     item.Category,
	}

	if item.ImagePath != "" {
		url := a.uploads.URL(item.ImagePath)
		out.Image = &url
	}

	return out
}

// solutionTags derives the badge set; a record flagged both new and
// popular keeps only "new", matching how the catalog always behaved.
func solutionTags(item db.Solution) []string {
	switch {
	case item.IsNew:
		return []string{"new"}
	case item.IsPopular:
		return []string{"popular"}
	default:
		return []string{}
	}
}
