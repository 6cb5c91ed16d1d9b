package service

import "errors"

var (
	ErrNewsNotFound       = errors.New("news item not found")
	ErrPageConfigNotFound = errors.New("page config not found")
)
