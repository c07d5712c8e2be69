package utils

import "coolenergy/apperrors"

func AuthorizeRole(userRole string, allowedRoles ...string) error {
	for _, allowedRole := range allowedRoles {
		if allowedRole == userRole {
			return nil
		}
	}
	return apperrors.ErrUnauthorized
}
