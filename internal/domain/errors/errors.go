package errors

import (
	"errors"
	"fmt"
)

// ErrorType은 에러의 종류를 나타냅니다
type ErrorType string

const (
	// ErrorTypeValidation은 유효성 검증 실패를 나타냅니다
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeConflict는 서로 배타적인 파라미터가 함께 지정되었음을 나타냅니다
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeSystem은 시스템 레벨 에러를 나타냅니다
	ErrorTypeSystem ErrorType = "SYSTEM"

	// ErrorTypeUnclassifiable은 인터페이스 타입을 결정할 수 없음을 나타냅니다
	ErrorTypeUnclassifiable ErrorType = "UNCLASSIFIABLE_INTERFACE"
)

// DomainError는 도메인 레벨의 에러를 나타냅니다
type DomainError struct {
	Type     ErrorType
	Message  string
	Resource string // 에러와 관련된 인터페이스 이름이나 파라미터 이름
	Cause    error
}

// Error는 error 인터페이스를 구현합니다
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap은 내부 에러를 반환합니다
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is는 에러 비교를 위한 메서드입니다
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// 생성자 함수들

// NewValidationError는 유효성 검증 에러를 생성합니다
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewConflictError는 충돌 에러를 생성합니다
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeConflict,
		Message: message,
	}
}

// NewSystemError는 시스템 에러를 생성합니다
func NewSystemError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeSystem,
		Message: message,
		Cause:   cause,
	}
}

// NewUnclassifiableInterfaceError는 어떤 분류 규칙에도 맞지 않는 인터페이스에 대한 에러를 생성합니다
func NewUnclassifiableInterfaceError(name string) *DomainError {
	return &DomainError{
		Type:     ErrorTypeUnclassifiable,
		Message:  fmt.Sprintf("unable to determine interface type %s", name),
		Resource: name,
	}
}

// 에러 타입 확인 헬퍼 함수들

// IsValidationError는 유효성 검증 에러인지 확인합니다
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsConflictError는 충돌 에러인지 확인합니다
func IsConflictError(err error) bool {
	return hasType(err, ErrorTypeConflict)
}

// IsSystemError는 시스템 에러인지 확인합니다
func IsSystemError(err error) bool {
	return hasType(err, ErrorTypeSystem)
}

// IsUnclassifiableInterfaceError는 인터페이스 분류 실패 에러인지 확인합니다
func IsUnclassifiableInterfaceError(err error) bool {
	return hasType(err, ErrorTypeUnclassifiable)
}

// TypeOf는 에러 체인에서 DomainError의 타입을 찾아 반환합니다.
// DomainError가 아니면 빈 문자열을 반환합니다.
func TypeOf(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

// MessageOf는 호스트 엔진에 보고할 사람이 읽을 수 있는 메시지를 반환합니다
func MessageOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Cause != nil {
			return fmt.Sprintf("%s: %v", domainErr.Message, domainErr.Cause)
		}
		return domainErr.Message
	}
	return err.Error()
}

func hasType(err error, errorType ErrorType) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == errorType
	}
	return false
}
