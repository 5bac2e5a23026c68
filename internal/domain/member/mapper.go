package member

func PostToMember(companyID int64, req PostRequest) CompanyMember {
	return CompanyMember{
		CompanyID: companyID,
		Grade:     req.Grade,
		Team:      req.Team,
	}
}

func PatchToMember(companyID, memberID int64, req PatchRequest) MemberPatch {
	return MemberPatch{
		ID:        memberID,
		CompanyID: companyID,
		Role:      req.Role,
		Grade:     req.Grade,
		Team:      req.Team,
		Status:    req.Status,
	}
}

func ToResponse(m CompanyMember) Response {
	return Response{
		CompanyMemberID: m.ID,
		CompanyID:       m.CompanyID,
		CompanyName:     m.CompanyName,
		UserID:          m.UserID,
		Name:            m.MemberName,
		Role:            m.Role,
		Grade:           m.Grade,
		Team:            m.Team,
		Status:          m.Status,
	}
}

func ToResponses(members []CompanyMember) []Response {
	responses := make([]Response, 0, len(members))
	for _, m := range members {
		responses = append(responses, ToResponse(m))
	}
	return responses
}
