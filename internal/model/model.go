// Package model holds the types shared by the handler, service and
// repository layers: the User entity, its create/patch parameters and the
// parsed form of a users query.
package model
