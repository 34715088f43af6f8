// Package i defines the contract between the router and the controllers.
package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the public and the authenticated route
// groups. A controller with nothing to offer on one of the groups registers
// nothing there.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
