package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterInvestmentRoutes registers the routes for investments with
// the RouterGroup that is passed.
func RegisterInvestmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInvestments)
		r.GET("", GetInvestments)
		r.POST("", CreateInvestments)
	}

	// Investment with ID
	{
		r.OPTIONS("/:id", OptionsInvestmentDetail)
		r.GET("/:id", GetInvestment)
		r.PATCH("/:id", UpdateInvestment)
		r.DELETE("/:id", DeleteInvestment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments [options]
func OptionsInvestments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [options]
func OptionsInvestmentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Investment{})
}

// @Summary		Create investments
// @Description	Creates investments from the list of submitted investment data. The response code is the highest response code number that a single investment creation would have caused. If it is not equal to 201, at least one investment has an error.
// @Tags			Investments
// @Produce		json
// @Success		201		{object}	InvestmentCreateResponse
// @Failure		400		{object}	InvestmentCreateResponse
// @Failure		500		{object}	InvestmentCreateResponse
// @Param			investments	body		[]InvestmentEditable	true	"Investments"
// @Router			/v1/investments [post]
func CreateInvestments(c *gin.Context) {
	var investments []InvestmentEditable

	err := httputil.BindData(c, &investments)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvestmentCreateResponse{}

	for _, create := range investments {
		investment := create.model()
		err = models.DB.Create(&investment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newInvestment(c, investment)
		r.Data = append(r.Data, InvestmentResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get investments
// @Description	Returns a list of investments together with their returns
// @Tags			Investments
// @Produce		json
// @Success		200			{object}	InvestmentListResponse
// @Failure		400			{object}	InvestmentListResponse
// @Failure		500			{object}	InvestmentListResponse
// @Router			/v1/investments [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			type		query	string	false	"Filter by type"
// @Param			notes		query	string	false	"Filter by notes"
// @Param			search		query	string	false	"Search for this text in name and notes"
// @Param			offset		query	uint	false	"The offset of the first investment returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of investments to return. Defaults to 50."
func GetInvestments(c *gin.Context) {
	var filter InvestmentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, InvestmentListResponse{
			Error: &s,
		})
		return
	}

	// Get the parameters set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("datetime(investments.purchase_date) DESC, investments.name ASC").
		Where(&where, queryFields...)

	q = stringFilter(q, setFields, "Name", "investments.name", filter.Name)
	q = stringFilter(q, setFields, "Notes", "investments.notes", filter.Notes)
	q = searchFilter(models.DB, q, filter.Search, "investments.name", "investments.notes")
	q, limit := limitFilter(q, setFields, filter.Offset, filter.Limit)

	var investments []models.Investment
	err := q.Find(&investments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Investment, 0)
	for _, investment := range investments {
		data = append(data, newInvestment(c, investment))
	}

	c.JSON(http.StatusOK, InvestmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get investment
// @Description	Returns a specific investment together with its returns
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentResponse
// @Failure		400	{object}	InvestmentResponse
// @Failure		404	{object}	InvestmentResponse
// @Failure		500	{object}	InvestmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [get]
func GetInvestment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	var investment models.Investment
	err = models.DB.First(&investment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvestment(c, investment)
	c.JSON(http.StatusOK, InvestmentResponse{Data: &apiResource})
}

// @Summary		Update investment
// @Description	Updates an existing investment. Only values to be updated need to be specified.
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200		{object}	InvestmentResponse
// @Failure		400		{object}	InvestmentResponse
// @Failure		404		{object}	InvestmentResponse
// @Failure		500		{object}	InvestmentResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			investment	body		InvestmentEditable	true	"Investment"
// @Router			/v1/investments/{id} [patch]
func UpdateInvestment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	var investment models.Investment
	err = models.DB.First(&investment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InvestmentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	var data InvestmentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	// A null current value resets it to the invested amount
	if data.CurrentValue == nil && slices.Contains(updateFields, "CurrentValue") {
		amount := investment.Amount
		if slices.Contains(updateFields, "Amount") {
			amount = data.Amount
		}
		data.CurrentValue = &amount
	}

	err = update(&investment, data.model(), updateFields)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvestment(c, investment)
	c.JSON(http.StatusOK, InvestmentResponse{Data: &apiResource})
}

// @Summary		Delete investment
// @Description	Deletes an investment
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [delete]
func DeleteInvestment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var investment models.Investment
	err = models.DB.First(&investment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&investment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
