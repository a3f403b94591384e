package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Landing page
	message.SetString(lang, "landing.title", "Coffee, bookings and orders in one place")
	message.SetString(lang, "landing.subtitle", "Reserve a table, order from the menu and pay without waiting for the bill.")
	message.SetString(lang, "landing.action_login", "Sign in")
	message.SetString(lang, "landing.action_register", "Create an account")
	message.SetString(lang, "landing.feature_booking", "Book a table for the morning, afternoon, evening or night.")
	message.SetString(lang, "landing.feature_menu", "Browse the menu by category and order straight from your table.")
	message.SetString(lang, "landing.feature_payment", "Pay online and get your receipt and invoice by email.")

	// Auth pages
	message.SetString(lang, "auth.login.title", "Sign in")
	message.SetString(lang, "auth.login.submit", "Sign in")
	message.SetString(lang, "auth.login.link", "Already have an account? Sign in")
	message.SetString(lang, "auth.register.title", "Create account")
	message.SetString(lang, "auth.register.submit", "Create account")
	message.SetString(lang, "auth.register.link", "New here? Create an account")
	message.SetString(lang, "auth.admin_login.title", "Admin portal")
	message.SetString(lang, "auth.admin_register.title", "Register an administrator")
	message.SetString(lang, "auth.admin_register.link", "Register an administrator")
	message.SetString(lang, "auth.forgot.title", "Forgot password")
	message.SetString(lang, "auth.forgot.help", "Enter your email and we will send you a link to reset your password.")
	message.SetString(lang, "auth.forgot.submit", "Send reset link")
	message.SetString(lang, "auth.forgot.link", "Forgot your password?")
	message.SetString(lang, "auth.forgot.sent", "If an account exists for that email, a reset link is on its way.")
	message.SetString(lang, "auth.reset.title", "Reset password")
	message.SetString(lang, "auth.reset.submit", "Set new password")
	message.SetString(lang, "auth.reset.request_new", "Request a new reset link")
	message.SetString(lang, "auth.field.name", "Name")
	message.SetString(lang, "auth.field.email", "Email")
	message.SetString(lang, "auth.field.phone", "Phone")
	message.SetString(lang, "auth.field.password", "Password")
	message.SetString(lang, "auth.field.confirm_password", "Confirm password")
	message.SetString(lang, "auth.field.current_password", "Current password")
	message.SetString(lang, "auth.field.new_password", "New password")
	message.SetString(lang, "auth.notice.registered", "Account created. You can sign in now.")
	message.SetString(lang, "auth.notice.admin_registered", "Administrator registered. You can sign in now.")
	message.SetString(lang, "auth.notice.password_reset", "Password updated. Sign in with your new password.")
	message.SetString(lang, "auth.notice.signed_out", "You have been signed out.")

	// Roles
	message.SetString(lang, "role.admin", "Administrator")
	message.SetString(lang, "role.customer", "Customer")
	message.SetString(lang, "role.chef", "Chef")
	message.SetString(lang, "role.waiter", "Waiter")

	// Navigation
	message.SetString(lang, "nav.logout", "Sign out")
	message.SetString(lang, "nav.customer.dashboard", "Dashboard")
	message.SetString(lang, "nav.customer.book_table", "Book a table")
	message.SetString(lang, "nav.customer.menu", "Menu")
	message.SetString(lang, "nav.customer.orders", "My orders")
	message.SetString(lang, "nav.customer.profile", "Profile")
	message.SetString(lang, "nav.customer.feedback", "Feedback")
	message.SetString(lang, "nav.customer.feedback_history", "My feedback")
	message.SetString(lang, "nav.chef.dashboard", "Kitchen")
	message.SetString(lang, "nav.chef.orders", "Kitchen orders")
	message.SetString(lang, "nav.chef.profile", "Profile")
	message.SetString(lang, "nav.waiter.dashboard", "Floor")
	message.SetString(lang, "nav.waiter.orders", "Orders to serve")
	message.SetString(lang, "nav.waiter.profile", "Profile")
	message.SetString(lang, "nav.admin.dashboard", "Dashboard")
	message.SetString(lang, "nav.admin.staff", "Staff")
	message.SetString(lang, "nav.admin.menu", "Menu")
	message.SetString(lang, "nav.admin.orders", "Orders")
	message.SetString(lang, "nav.admin.customers", "Customers")
	message.SetString(lang, "nav.admin.tables", "Tables")
	message.SetString(lang, "nav.admin.feedback", "Feedback")

	// Customer dashboard
	message.SetString(lang, "customer.dashboard.welcome", "Welcome back, %s")
	message.SetString(lang, "customer.dashboard.active_booking", "Your booking")
	message.SetString(lang, "customer.dashboard.no_active_booking", "You have no active booking.")
	message.SetString(lang, "customer.dashboard.order_now", "Order now")
	message.SetString(lang, "customer.recent_orders", "Recent orders")
	message.SetString(lang, "customer.stats.total_orders", "Orders")
	message.SetString(lang, "customer.stats.active_orders", "In progress")
	message.SetString(lang, "customer.stats.completed_orders", "Completed")
	message.SetString(lang, "customer.stats.total_spent", "Total spent")

	// Booking
	message.SetString(lang, "booking.search.title", "Find a table")
	message.SetString(lang, "booking.search.submit", "Check availability")
	message.SetString(lang, "booking.date", "Date")
	message.SetString(lang, "booking.slot", "Time slot")
	message.SetString(lang, "booking.slot_select", "Choose a slot")
	message.SetString(lang, "booking.slot.morning", "Morning")
	message.SetString(lang, "booking.slot.afternoon", "Afternoon")
	message.SetString(lang, "booking.slot.evening", "Evening")
	message.SetString(lang, "booking.slot.night", "Night")
	message.SetString(lang, "booking.guests", "Guests")
	message.SetString(lang, "booking.special_requests", "Special requests")
	message.SetString(lang, "booking.available_tables", "Available tables")
	message.SetString(lang, "booking.no_tables", "No tables are free for that slot.")
	message.SetString(lang, "booking.table", "Table")
	message.SetString(lang, "booking.table_number", "Table %s")
	message.SetString(lang, "booking.capacity", "Seats %d")
	message.SetString(lang, "booking.book", "Book this table")
	message.SetString(lang, "booking.cancel", "Cancel booking")
	message.SetString(lang, "booking.cancel_confirm", "Cancel this booking?")
	message.SetString(lang, "booking.notice.booked", "Table booked.")
	message.SetString(lang, "booking.notice.cancelled", "Booking cancelled.")

	// Menu and cart
	message.SetString(lang, "menu.search", "Search")
	message.SetString(lang, "menu.search_placeholder", "Search the menu")
	message.SetString(lang, "menu.category", "Category")
	message.SetString(lang, "menu.category_all", "All")
	message.SetString(lang, "menu.filter", "Filter")
	message.SetString(lang, "menu.empty", "No menu items match.")
	message.SetString(lang, "menu.prep_time", "%d min")
	message.SetString(lang, "menu.add_to_cart", "Add to cart")
	message.SetString(lang, "cart.title", "Your cart (%d)")
	message.SetString(lang, "cart.empty", "Your cart is empty.")
	message.SetString(lang, "cart.total", "Total: %s")
	message.SetString(lang, "cart.clear", "Clear cart")
	message.SetString(lang, "cart.special_instructions", "Special instructions")
	message.SetString(lang, "cart.checkout", "Place order")

	// Orders
	message.SetString(lang, "orders.number", "Order #%s")
	message.SetString(lang, "orders.total", "Total: %s")
	message.SetString(lang, "orders.empty", "No orders yet.")
	message.SetString(lang, "orders.pay_now", "Pay now")
	message.SetString(lang, "orders.notice.placed", "Order placed.")

	// Payment
	message.SetString(lang, "payment.title", "Payment")
	message.SetString(lang, "payment.pay", "Pay %s")
	message.SetString(lang, "payment.not_payable", "This order cannot be paid right now.")
	message.SetString(lang, "payment.back_to_orders", "Back to my orders")
	message.SetString(lang, "payment.opening_checkout", "Opening the secure checkout...")
	message.SetString(lang, "payment.reopen", "Open checkout again")
	message.SetString(lang, "payment.success.title", "Payment complete")
	message.SetString(lang, "payment.success.heading", "Thank you, your payment went through.")
	message.SetString(lang, "payment.success.payment_id", "Payment ID: %s")
	message.SetString(lang, "payment.download.receipt", "Download receipt")
	message.SetString(lang, "payment.download.invoice", "Download invoice")
	message.SetString(lang, "payment.email.receipt", "Email receipt")
	message.SetString(lang, "payment.email.invoice", "Email invoice")
	message.SetString(lang, "payment.notice.verified", "Payment verified.")
	message.SetString(lang, "payment.notice.emailed_receipt", "Receipt sent to your email.")
	message.SetString(lang, "payment.notice.emailed_invoice", "Invoice sent to your email.")

	// Profile
	message.SetString(lang, "profile.details", "Your details")
	message.SetString(lang, "profile.role", "Role")
	message.SetString(lang, "profile.save", "Save")
	message.SetString(lang, "profile.stale", "Showing the details saved at sign in.")
	message.SetString(lang, "profile.change_password", "Change password")
	message.SetString(lang, "profile.notice.saved", "Profile saved.")
	message.SetString(lang, "profile.notice.password_changed", "Password changed.")

	// Feedback
	message.SetString(lang, "feedback.rating", "Rating")
	message.SetString(lang, "feedback.category", "Category")
	message.SetString(lang, "feedback.category_select", "Choose a category")
	message.SetString(lang, "feedback.comment", "Comment")
	message.SetString(lang, "feedback.order", "Order")
	message.SetString(lang, "feedback.order_none", "Not about an order")
	message.SetString(lang, "feedback.submit", "Send feedback")
	message.SetString(lang, "feedback.empty", "No feedback yet.")
	message.SetString(lang, "feedback.admin_notes", "Admin notes: %s")
	message.SetString(lang, "feedback.notice.submitted", "Thanks for your feedback.")

	// Order boards
	message.SetString(lang, "board.filter.all", "All")
	message.SetString(lang, "board.filter.pending", "Pending")
	message.SetString(lang, "board.filter.preparing", "Preparing")
	message.SetString(lang, "board.filter.ready", "Ready")
	message.SetString(lang, "board.filter.served", "Served")
	message.SetString(lang, "board.filter.all_tables", "All tables")
	message.SetString(lang, "board.table", "Table")
	message.SetString(lang, "board.apply", "Apply")
	message.SetString(lang, "board.empty", "No orders here.")
	message.SetString(lang, "board.notice.status_updated", "Order updated.")

	// Chef
	message.SetString(lang, "chef.action.start_preparing", "Start preparing")
	message.SetString(lang, "chef.action.mark_ready", "Mark ready")
	message.SetString(lang, "chef.action.mark_completed", "Mark completed")
	message.SetString(lang, "chef.stats.total", "Orders")
	message.SetString(lang, "chef.stats.active", "In the kitchen")
	message.SetString(lang, "chef.stats.ready", "Ready")
	message.SetString(lang, "chef.stats.today", "Today")
	message.SetString(lang, "chef.stats.completed_today", "Completed today")
	message.SetString(lang, "chef.stats.revenue_today", "Revenue today")
	message.SetString(lang, "chef.stats.distribution", "Orders by status")

	// Waiter
	message.SetString(lang, "waiter.action.serve", "Serve")
	message.SetString(lang, "waiter.action.mark_served", "Mark served")
	message.SetString(lang, "waiter.action.mark_completed", "Mark completed")
	message.SetString(lang, "waiter.ready_to_serve", "Ready to serve")
	message.SetString(lang, "waiter.stats.active", "Active orders")
	message.SetString(lang, "waiter.stats.ready", "Ready")
	message.SetString(lang, "waiter.stats.served", "Served")
	message.SetString(lang, "waiter.tables.total", "Tables")
	message.SetString(lang, "waiter.tables.available", "Available")
	message.SetString(lang, "waiter.tables.occupied", "Occupied")

	// Admin
	message.SetString(lang, "admin.edit", "Edit")
	message.SetString(lang, "admin.delete", "Delete")
	message.SetString(lang, "admin.cancel", "Cancel")
	message.SetString(lang, "admin.column.actions", "Actions")
	message.SetString(lang, "admin.column.status", "Status")
	message.SetString(lang, "admin.stats.orders", "Orders")
	message.SetString(lang, "admin.stats.customers", "Customers")
	message.SetString(lang, "admin.stats.staff", "Staff")
	message.SetString(lang, "admin.stats.tables", "Tables")
	message.SetString(lang, "admin.stats.order_pipeline", "Order pipeline")
	message.SetString(lang, "admin.staff.create", "Add staff member")
	message.SetString(lang, "admin.staff.submit", "Create")
	message.SetString(lang, "admin.staff.empty", "No staff members yet.")
	message.SetString(lang, "admin.staff.delete_confirm", "Remove %s from staff?")
	message.SetString(lang, "admin.staff.notice.created", "Staff member created.")
	message.SetString(lang, "admin.staff.notice.deleted", "Staff member removed.")
	message.SetString(lang, "admin.menu.add", "Add menu item")
	message.SetString(lang, "admin.menu.edit", "Edit menu item")
	message.SetString(lang, "admin.menu.name", "Name")
	message.SetString(lang, "admin.menu.description", "Description")
	message.SetString(lang, "admin.menu.price", "Price")
	message.SetString(lang, "admin.menu.prep_time", "Preparation time (min)")
	message.SetString(lang, "admin.menu.image", "Image")
	message.SetString(lang, "admin.menu.availability", "Availability")
	message.SetString(lang, "admin.menu.available", "Available")
	message.SetString(lang, "admin.menu.unavailable", "Unavailable")
	message.SetString(lang, "admin.menu.delete_confirm", "Delete %s from the menu?")
	message.SetString(lang, "admin.menu.notice.added", "Menu item added.")
	message.SetString(lang, "admin.menu.notice.updated", "Menu item updated.")
	message.SetString(lang, "admin.menu.notice.deleted", "Menu item deleted.")
	message.SetString(lang, "admin.customers.empty", "No customers yet.")
	message.SetString(lang, "admin.customers.joined", "Joined")
	message.SetString(lang, "admin.tables.add", "Add table")
	message.SetString(lang, "admin.tables.edit", "Edit table")
	message.SetString(lang, "admin.tables.number", "Table number")
	message.SetString(lang, "admin.tables.capacity", "Capacity")
	message.SetString(lang, "admin.tables.location", "Location")
	message.SetString(lang, "admin.tables.description", "Description")
	message.SetString(lang, "admin.tables.empty", "No tables yet.")
	message.SetString(lang, "admin.tables.delete_confirm", "Delete table %s?")
	message.SetString(lang, "admin.tables.set_maintenance", "Put under maintenance")
	message.SetString(lang, "admin.tables.set_available", "Mark available")
	message.SetString(lang, "admin.tables.notice.added", "Table added.")
	message.SetString(lang, "admin.tables.notice.updated", "Table updated.")
	message.SetString(lang, "admin.tables.notice.deleted", "Table deleted.")
	message.SetString(lang, "admin.tables.notice.maintenance", "Table is under maintenance.")
	message.SetString(lang, "admin.tables.notice.available", "Table is available again.")
	message.SetString(lang, "admin.feedback.total", "Feedback")
	message.SetString(lang, "admin.feedback.average", "Average rating")
	message.SetString(lang, "admin.feedback.pending", "Pending")
	message.SetString(lang, "admin.feedback.resolved", "Resolved")
	message.SetString(lang, "admin.feedback.by_category", "By category")
	message.SetString(lang, "admin.feedback.status_all", "All statuses")

	// Error page
	message.SetString(lang, "web.error.page_title_not_found", "Not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.title_not_found", "We could not find that page")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you asked for does not exist or was removed.")
	message.SetString(lang, "web.error.message_server_error", "We could not complete the request. Please try again in a moment.")
	message.SetString(lang, "web.error.action_back_to_dashboard", "Back to your dashboard")

	// Error messages
	message.SetString(lang, "error.web.message.request_failed", "The request could not be completed.")
	message.SetString(lang, "error.web.message.backend_unavailable", "The JavaBite service is unavailable. Please try again shortly.")
	message.SetString(lang, "error.web.message.session_expired", "Your session has expired. Please sign in again.")
	message.SetString(lang, "error.web.message.role_missing", "Your account has no role assigned. Contact an administrator.")
	message.SetString(lang, "error.web.message.admin_portal_only", "Only administrators can sign in here.")
	message.SetString(lang, "error.web.message.invalid_credentials", "Email or password is incorrect.")
	message.SetString(lang, "error.web.message.email_required", "Email is required.")
	message.SetString(lang, "error.web.message.email_and_password_required", "Email and password are required.")
	message.SetString(lang, "error.web.message.registration_fields_required", "Name, email and password are required.")
	message.SetString(lang, "error.web.message.password_too_short", "Password must be at least 6 characters.")
	message.SetString(lang, "error.web.message.passwords_do_not_match", "Passwords do not match.")
	message.SetString(lang, "error.web.message.current_password_required", "Current password is required.")
	message.SetString(lang, "error.web.message.reset_token_invalid", "This reset link is invalid or has expired.")
	message.SetString(lang, "error.web.message.profile_fields_required", "Name and email are required.")
	message.SetString(lang, "error.web.message.booking_date_slot_required", "Choose a date and a time slot.")
	message.SetString(lang, "error.web.message.booking_slot_invalid", "Choose a valid time slot.")
	message.SetString(lang, "error.web.message.booking_table_required", "Choose a table to book.")
	message.SetString(lang, "error.web.message.cart_empty", "Your cart is empty.")
	message.SetString(lang, "error.web.message.menu_item_unavailable", "That menu item is not available.")
	message.SetString(lang, "error.web.message.cart_quantity_too_large", "You can order at most 99 of one item.")
	message.SetString(lang, "error.web.message.order_not_found", "Order not found.")
	message.SetString(lang, "error.web.message.order_not_payable", "This order cannot be paid.")
	message.SetString(lang, "error.web.message.invalid_order_status", "That status change is not allowed.")
	message.SetString(lang, "error.web.message.payment_incomplete", "The payment did not complete. Please try again.")
	message.SetString(lang, "error.web.message.payment_not_configured", "Online payment is not configured.")
	message.SetString(lang, "error.web.message.email_failed", "We could not send the email. Please try again.")
	message.SetString(lang, "error.web.message.feedback_rating_required", "Choose a rating from 1 to 5.")
	message.SetString(lang, "error.web.message.feedback_category_required", "Choose a feedback category.")
	message.SetString(lang, "error.web.message.staff_fields_required", "Name, email, password and role are required.")
	message.SetString(lang, "error.web.message.staff_role_invalid", "Staff role must be chef or waiter.")
	message.SetString(lang, "error.web.message.menu_fields_required", "Name, price and category are required.")
	message.SetString(lang, "error.web.message.menu_price_invalid", "Price must be a number of zero or more.")
	message.SetString(lang, "error.web.message.menu_prep_time_invalid", "Preparation time must be a whole number of minutes.")
	message.SetString(lang, "error.web.message.menu_image_invalid", "Image must be a picture of at most 5 MB.")
	message.SetString(lang, "error.web.message.table_fields_required", "Table number and a capacity of at least 1 are required.")
	message.SetString(lang, "error.web.message.table_not_found", "Table not found.")
	message.SetString(lang, "error.web.message.failed_to_parse_login_form", "We could not read the sign-in form.")
	message.SetString(lang, "error.web.message.failed_to_parse_register_form", "We could not read the registration form.")
	message.SetString(lang, "error.web.message.failed_to_parse_forgot_form", "We could not read the form.")
	message.SetString(lang, "error.web.message.failed_to_parse_reset_form", "We could not read the form.")
	message.SetString(lang, "error.web.message.failed_to_parse_password_form", "We could not read the password form.")
	message.SetString(lang, "error.web.message.failed_to_parse_profile_form", "We could not read the profile form.")
	message.SetString(lang, "error.web.message.failed_to_parse_booking_form", "We could not read the booking form.")
	message.SetString(lang, "error.web.message.failed_to_parse_cart_form", "We could not read the cart form.")
	message.SetString(lang, "error.web.message.failed_to_parse_checkout_form", "We could not read the checkout form.")
	message.SetString(lang, "error.web.message.failed_to_parse_feedback_form", "We could not read the feedback form.")
	message.SetString(lang, "error.web.message.failed_to_parse_payment_form", "We could not read the payment response.")
	message.SetString(lang, "error.web.message.failed_to_parse_status_form", "We could not read the status form.")
	message.SetString(lang, "error.web.message.failed_to_parse_staff_form", "We could not read the staff form.")
	message.SetString(lang, "error.web.message.failed_to_parse_menu_form", "We could not read the menu form.")
	message.SetString(lang, "error.web.message.failed_to_parse_table_form", "We could not read the table form.")
}
