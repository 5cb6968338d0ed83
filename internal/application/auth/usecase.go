package auth

import (
	"context"
	"crypto/subtle"
	"strconv"
	"strings"

	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
	"github.com/jhoicas/unitflow-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación del directorio de empleados.
type UseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Login verifica las credenciales y emite un JWT con id y departamento.
//
// DEPRECADO (ventana de migración): credenciales legadas almacenadas en texto
// plano se aceptan si coinciden, y en ese momento se reemplazan por un hash
// bcrypt. Cuando todas las credenciales estén hasheadas, eliminar la rama
// legacyPlainTextMatch.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUnauthorized
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)) != nil {
		if !legacyPlainTextMatch(employee.PasswordHash, in.Password) {
			return nil, domain.ErrUnauthorized
		}
		// Upgrade forzoso de la credencial legada a bcrypt.
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := uc.employeeRepo.UpdatePassword(ctx, employee.ID, string(hash)); err != nil {
			return nil, err
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret,
		strconv.FormatInt(employee.ID, 10), employee.Department,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Employee: toEmployeeResponse(employee),
	}, nil
}

// legacyPlainTextMatch compara en tiempo constante contra una credencial
// almacenada sin hashear. Nunca trata un hash bcrypt como texto plano.
func legacyPlainTextMatch(stored, password string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Username:   e.Username,
		Department: e.Department,
		WorkPage:   e.WorkPage,
	}
}
