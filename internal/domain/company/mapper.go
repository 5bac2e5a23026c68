package company

// PostToCompany builds a new, not yet persisted company. The owner is set by the service.
func PostToCompany(req PostRequest) Company {
	return Company{
		Name:           req.CompanyName,
		Size:           req.CompanySize,
		BusinessNumber: req.BusinessNumber,
		Address:        req.Address,
		Information:    req.Information,
	}
}

func PatchToCompany(companyID int64, req PatchRequest) CompanyPatch {
	return CompanyPatch{
		ID:             companyID,
		Name:           req.CompanyName,
		Size:           req.CompanySize,
		BusinessNumber: req.BusinessNumber,
		Address:        req.Address,
		Information:    req.Information,
	}
}

func ToResponse(c Company) Response {
	return Response{
		CompanyID:      c.ID,
		CompanyName:    c.Name,
		CompanySize:    c.Size,
		BusinessNumber: c.BusinessNumber,
		Address:        c.Address,
		Information:    c.Information,
		UserID:         c.UserID,
	}
}

func ToResponses(companies []Company) []Response {
	responses := make([]Response, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, ToResponse(c))
	}
	return responses
}
