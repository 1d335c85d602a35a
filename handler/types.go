package handler

import "mime/multipart"

type errcode int

const (
	errBadRequest errcode = 10001 + iota
	errInternalServer
)

func (e errcode) String() string {
	switch e {
	case errBadRequest:
		return "invalid request"
	case errInternalServer:
		return "internal server error"
	default:
		return "unknown error"
	}
}

type apiResponse struct {
	Code    errcode `json:"code"`
	Message string  `json:"message"`
	Data    any     `json:"data,omitempty"`
}

func success(data any) apiResponse {
	return apiResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

func fail(code errcode, message string) apiResponse {
	return apiResponse{
		Code:    code,
		Message: message,
	}
}

type importTerrainRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
	Name string                `form:"name"`
}
