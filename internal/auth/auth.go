// Package auth issues and verifies bearer tokens and enforces the
// role-based permission check on API routes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slices"
)

// Role is the role of an authenticated caller.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleFinanceManager Role = "finance_manager"
	RoleAccountant     Role = "accountant"
	RoleProjectLead    Role = "project_lead"
	RoleStaff          Role = "staff"
)

// Roles lists all known roles.
var Roles = []Role{RoleAdmin, RoleFinanceManager, RoleAccountant, RoleProjectLead, RoleStaff}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

// Role sets for the API routes
var (
	// Ledger, balance sheet and income statement
	ReportRoles = []Role{RoleAdmin, RoleFinanceManager}

	// Chart of accounts and reporting period writes
	ChartWriteRoles = []Role{RoleAdmin, RoleFinanceManager}

	// Chart of accounts and reporting period reads
	ChartReadRoles = []Role{RoleAdmin, RoleFinanceManager, RoleAccountant}

	// Manual journal entries, funding and allocations
	PostingRoles = []Role{RoleAdmin, RoleFinanceManager, RoleAccountant}

	// Expenses
	ExpenseRoles = Roles

	// Project and sub project writes
	ProjectWriteRoles = []Role{RoleAdmin, RoleProjectLead}

	// Budget view, project reads
	ReadRoles = Roles
)

var (
	ErrTokenMissing = errors.New("authentication is required, send a bearer token in the Authorization header")
	ErrTokenInvalid = errors.New("the bearer token is invalid or expired")
	ErrRoleInvalid  = errors.New("the role is not one of admin, finance_manager, accountant, project_lead, staff")
)

// Claims are the claims of a fundledger bearer token.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and parses HS256 signed tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokens returns a Tokens for the secret. Tokens expire after ttl.
func NewTokens(secret, issuer string, ttl time.Duration) Tokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return Tokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue returns a signed token for the subject with the role.
func (t Tokens) Issue(subject string, role Role) (string, error) {
	if !role.Valid() {
		return "", ErrRoleInvalid
	}

	if subject == "" {
		return "", errors.New("the subject of a token must not be empty")
	}

	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    t.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies the token and returns its claims.
func (t Tokens) Parse(tokenStr string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if !claims.Role.Valid() {
		return Claims{}, ErrRoleInvalid
	}

	return *claims, nil
}
