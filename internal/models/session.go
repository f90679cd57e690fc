package models

import "github.com/golang-jwt/jwt/v5"

// ShopClaims is the JWT payload of a shop session token minted by the
// hosting platform's OAuth flow.
type ShopClaims struct {
	ShopID     string `json:"shop_id"`
	ShopDomain string `json:"shop_domain"`
	jwt.RegisteredClaims
}
