// Package kernel holds the value objects shared by the catering domain model:
// money in minor currency units, delivery distances and order numbers.
//
// All money is carried as integer cents. Conversion to a decimal amount happens
// only for display, through shopspring/decimal, so no floating point value ever
// reaches a pricing computation.
package kernel
