// Package model defines the traffic-monitoring entities served by the mock
// backend: addresses, radars, vehicle-speed registers and users.
//
// Entities are plain value types without pointers so a collection can be
// deep-copied with the built-in copy. Response shapes that embed joined
// entities (radar with its address, register with its radar) and the
// password-free user view live next to the entity they decorate.
package model
