// Package shipment contains the shipment aggregate and its lifecycle state
// machine. A Shipment owns its Packages exclusively and accumulates an
// append-only trail of Log entries: one CREATE entry at birth, one UPDATE
// entry per accepted state transition, and one terminal DELETE entry before
// physical removal. The log count for a shipment therefore always equals the
// number of transitions it has undergone plus one.
package shipment
