// Package catalog holds the storefront's pure display and selection rules:
// filtering, category lists, the featured sample, rating stars, cart
// membership, stock hints and price formatting. Nothing here touches storage.
package catalog
