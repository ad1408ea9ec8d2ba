package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrJobTypeNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "job type")
}

func NewErrJobNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "job")
}

type ErrJobTypeAlreadyExists struct {
	error
}

func NewErrJobTypeAlreadyExists(name, version string) *ErrJobTypeAlreadyExists {
	return &ErrJobTypeAlreadyExists{fmt.Errorf("job type %s version %s already exists", name, version)}
}

type ErrInvalidJobType struct {
	error
}

func NewErrInvalidJobType(message string) *ErrInvalidJobType {
	return &ErrInvalidJobType{fmt.Errorf("invalid job type: %s", message)}
}

type ErrInvalidJobStatus struct {
	error
}

func NewErrInvalidJobStatus(status string) *ErrInvalidJobStatus {
	return &ErrInvalidJobStatus{fmt.Errorf("invalid job status %q", status)}
}

func NewErrInvalidErrorCategory(category string) *ErrInvalidJobStatus {
	return &ErrInvalidJobStatus{fmt.Errorf("invalid error category %q", category)}
}
