// Package services provides the derived views of a configuration: which figures
// are complete, what the configuration costs, and the order built from it.
//
// The package includes:
//   - CompletionEvaluator: completion flags per category, figure and order
//   - PriceCalculator: extra accessory count and total price
//   - OrderAssembler: turns a finished configuration into a pending order
//
// Every service is a pure function of its inputs. Nothing is cached; callers
// construct a service from the current plan and store on every read.
package services
