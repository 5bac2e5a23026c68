package user

func PatchToUser(id int64, req PatchRequest) UserPatch {
	return UserPatch{ID: id, Name: req.Name}
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		UserID:        u.ID,
		Name:          u.Name,
		Email:         u.Email,
		OAuthProvider: u.OAuthProvider,
		CreatedAt:     u.CreatedAt,
	}
}
