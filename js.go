package web2pdf

// In-page scripts evaluated by the rod page driver. Each takes the content
// selector as an argument where relevant; rod marshals arguments as JSON, so
// no string escaping happens on the Go side.

// jsCountImages counts images under the content selector.
const jsCountImages = `(sel) => document.querySelectorAll(sel + " img").length`

// jsScrollThrough scrolls the document in fixed steps until the total
// scrolled distance reaches the scroll height, then returns to the top.
// Bounded by page height: the promise resolves once the bottom is passed.
const jsScrollThrough = `() => {
	return new Promise((resolve) => {
		let totalHeight = 0;
		const distance = 100;
		const timer = setInterval(() => {
			const scrollHeight = document.body.scrollHeight;
			window.scrollBy(0, distance);
			totalHeight += distance;

			if (totalHeight >= scrollHeight) {
				clearInterval(timer);
				window.scrollTo(0, 0);
				resolve();
			}
		}, 100);
	});
}`

// jsResolveDeferred forces each incomplete image to load its real source.
// Images carrying a deferred-source attribute (data-src) are redirected to
// it; on error the original src is restored and the image settles anyway.
const jsResolveDeferred = `(sel) => {
	return new Promise((resolve) => {
		const loadImage = (img) => {
			return new Promise((resolveImg) => {
				if (img.complete && img.naturalWidth > 1) {
					resolveImg();
					return;
				}

				const originalSrc = img.src;
				if (img.dataset.src) {
					img.src = img.dataset.src;
				}

				img.onload = () => resolveImg();
				img.onerror = () => {
					if (originalSrc !== img.src) {
						img.src = originalSrc;
					}
					resolveImg();
				};
			});
		};

		const images = Array.from(document.querySelectorAll(sel + " img"));
		Promise.all(images.map(img => loadImage(img))).then(resolve);
	});
}`

// jsAwaitImages resolves once every image fired load, fired error, or was
// already complete at call time. Errors resolve rather than reject so one
// broken image cannot block the capture indefinitely.
const jsAwaitImages = `(sel) => {
	const images = Array.from(document.querySelectorAll(sel + " img"));
	return Promise.all(images.map(img => {
		if (img.complete) return Promise.resolve();
		return new Promise((resolve) => {
			img.addEventListener('load', resolve);
			img.addEventListener('error', resolve);
		});
	}));
}`

// jsImageStatuses reports per-image diagnostics.
const jsImageStatuses = `(sel) => {
	const images = Array.from(document.querySelectorAll(sel + " img"));
	return images.map(img => ({
		src: img.src,
		dataSrc: img.dataset.src || "",
		complete: img.complete,
		naturalWidth: img.naturalWidth,
		naturalHeight: img.naturalHeight,
		offsetTop: img.offsetTop
	}));
}`

// jsRevealImages scrolls every image into the viewport so the renderer
// cannot skip offscreen ones.
const jsRevealImages = `(sel) => {
	const images = document.querySelectorAll(sel + " img");
	images.forEach(img => {
		img.scrollIntoView();
	});
}`
