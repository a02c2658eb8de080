// Package order contains the order aggregate and its value objects.
//
// An Order is a customer's purchase record: an owning customer, a fixed set
// of line items referencing catalog products by identity, a total computed
// at placement time, and a lifecycle status. The aggregate validates its own
// structure; which status movements and deletions are permitted for a given
// actor is decided by the lifecycle service in the services package.
package order
