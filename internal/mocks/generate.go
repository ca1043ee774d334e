package mocks

//go:generate mockgen -destination=mock_backend.go -package=mocks github.com/sa6mwa/com0com Backend
