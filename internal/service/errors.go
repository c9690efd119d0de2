package service

import "errors"

var (
	ErrScriptNotFound      = errors.New("script not found")
	ErrSectionNotFound     = errors.New("section not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrEventTypeNotFound   = errors.New("event type not found")
	ErrFieldNotFound       = errors.New("field definition not found")
	ErrInvalidFieldType    = errors.New("invalid field type")
	ErrInvalidPropertyName = errors.New("invalid property name")
	ErrDuplicateProperty   = errors.New("property name already used by this event type")
	ErrInvalidSectionType  = errors.New("invalid section type")
	ErrInvalidSectionList  = errors.New("section list does not match the script")
	ErrUnknownModule       = errors.New("unknown liturgy module")
	ErrInvalidPayload      = errors.New("invalid liturgy payload")
)
